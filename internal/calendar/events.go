// Package calendar projects tasks into calendar-event records.
package calendar

import "taskzen-go/internal/models"

// Priority colors.
const (
	ColorHigh   = "#ef4444" // red
	ColorMedium = "#eab308" // yellow
	ColorLow    = "#22c55e" // green
)

type Event struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Start           string `json:"start"` // YYYY-MM-DD
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
}

// ToEvents maps each task to an event colored by priority.
func ToEvents(tasks []models.Task) []Event {
	events := make([]Event, 0, len(tasks))
	for _, t := range tasks {
		color := ColorLow
		switch t.Priority {
		case models.PriorityHigh:
			color = ColorHigh
		case models.PriorityMedium:
			color = ColorMedium
		}
		events = append(events, Event{
			ID:              t.ID,
			Title:           t.Title,
			Start:           t.DueDate,
			BackgroundColor: color,
			BorderColor:     color,
		})
	}
	return events
}
