package database

import (
	"errors"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taskzen-go/internal/models"
)

// ErrMissingDatabaseURL is returned when no connection string is configured.
// Callers treat it as fatal at startup.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL not set")

// Connect opens the PostgreSQL database and runs migrations. A failed
// connectivity check is logged but does not halt startup; a missing
// connection string does.
func Connect(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, err
	}

	if sqlDB, err := db.DB(); err != nil {
		log.Printf("database handle unavailable: %v", err)
	} else if err := sqlDB.Ping(); err != nil {
		log.Printf("database ping failed: %v", err)
	} else {
		log.Println("database connected")
	}

	if err := db.AutoMigrate(&models.User{}, &models.Task{}, &models.ChatTurn{}); err != nil {
		return nil, err
	}

	return db, nil
}
