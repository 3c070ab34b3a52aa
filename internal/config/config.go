package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	DatabaseURL   string
	UploadDir     string
	TemplatesGlob string
	SessionSecret string
	SessionTTL    time.Duration
	GeminiKey     string
	GeminiBaseURL string
	GeminiModel   string
	TZDefault     string
	ReqTimeoutSec int
	ReminderEvery time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		UploadDir:     getenv("UPLOAD_DIR", "static/uploads"),
		TemplatesGlob: getenv("TEMPLATES_GLOB", "web/templates/*.html"),
		SessionSecret: getenv("SESSION_SECRET", "taskzen_secret"),
		SessionTTL:    time.Duration(atoi("SESSION_TTL_HOURS", 24)) * time.Hour,
		GeminiKey:     getenv("GEMINI_API_KEY", ""),
		GeminiBaseURL: getenv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiModel:   getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		TZDefault:     getenv("TZ_DEFAULT", "Asia/Kolkata"),
		ReqTimeoutSec: atoi("REQUEST_TIMEOUT_SECONDS", 30),
		ReminderEvery: time.Duration(atoi("REMINDER_EVERY_MINUTES", 60)) * time.Minute,
	}
}
