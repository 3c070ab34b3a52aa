package models

import (
	"time"
)

// Settings is the per-account preferences sub-record. It is materialized
// with fixed defaults the first time the settings page is opened; the
// SettingsReady flag on User tracks whether that happened.
type Settings struct {
	Theme              string `json:"theme"`
	EmailNotifications bool   `json:"email_notifications"`
	TaskReminders      bool   `json:"task_reminders"`
	DefaultPriority    string `json:"default_priority"`
	Timezone           string `json:"timezone"`
}

// DefaultSettings returns the defaults for a fresh account.
func DefaultSettings() Settings {
	return Settings{
		Theme:              "light",
		EmailNotifications: false,
		TaskReminders:      false,
		DefaultPriority:    PriorityMedium,
		Timezone:           "Asia/Kolkata",
	}
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`

	// Free-form profile fields, all optional.
	Phone    string `json:"phone"`
	DOB      string `json:"dob"` // YYYY-MM-DD
	Gender   string `json:"gender"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Address  string `json:"address"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`

	Settings      Settings `gorm:"embedded;embeddedPrefix:settings_" json:"settings"`
	SettingsReady bool     `gorm:"default:false" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
