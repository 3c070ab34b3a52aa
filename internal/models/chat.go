package models

import "time"

// ChatTurn is one exchange with the chatbot. The log is append-only and
// read back in chronological order.
type ChatTurn struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserEmail string    `gorm:"index" json:"user_email"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}
