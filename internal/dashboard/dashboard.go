// Package dashboard computes aggregate task statistics. Summaries are pure
// functions of the task set, recomputed on every call.
package dashboard

import (
	"math"

	"taskzen-go/internal/models"
)

// RecentLimit is how many recent tasks the dashboard shows.
const RecentLimit = 5

type Stats struct {
	Total             int `json:"total_tasks"`
	Completed         int `json:"completed_tasks"`
	Pending           int `json:"pending_tasks"`
	HighPriority      int `json:"high_priority_tasks"`
	CompletionPercent int `json:"completion_percentage"`
}

// Summarize counts the task set. The completion percentage is 0 when there
// are no tasks.
func Summarize(tasks []models.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.StatusCompleted:
			s.Completed++
		case models.StatusPending:
			s.Pending++
		}
		if t.Priority == models.PriorityHigh {
			s.HighPriority++
		}
	}
	if s.Total > 0 {
		s.CompletionPercent = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// Recent returns the first RecentLimit tasks of an already newest-first
// sorted slice.
func Recent(tasks []models.Task) []models.Task {
	if len(tasks) > RecentLimit {
		return tasks[:RecentLimit]
	}
	return tasks
}
