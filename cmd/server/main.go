package main

import (
	"log"

	"github.com/joho/godotenv"

	"taskzen-go/internal/config"
	"taskzen-go/internal/database"
	httpserver "taskzen-go/internal/http"
	"taskzen-go/internal/reminder"
	"taskzen-go/internal/repository"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	reminders := reminder.NewService(
		repository.NewUserRepository(db),
		repository.NewTaskRepository(db),
		cfg.TZDefault,
	)
	if err := reminders.Start(cfg.ReminderEvery); err != nil {
		log.Fatal(err)
	}
	defer reminders.Stop()

	r := httpserver.NewServer(cfg, db)
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
