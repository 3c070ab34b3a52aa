package models

import "time"

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Task is a single to-do item. Ownership is keyed by the owning user's
// email; every query and mutation is scoped by that field.
type Task struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserEmail   string `gorm:"index" json:"user_email"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // Low, Medium, High
	DueDate     string `json:"due_date"` // YYYY-MM-DD
	Status      string `json:"status"`   // Pending, Completed

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
