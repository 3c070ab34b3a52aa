// Package reminder runs the periodic task-reminder job for users who opted
// in via their settings.
package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"taskzen-go/internal/repository"
)

// Service walks opted-in users on a fixed interval and reports their
// pending tasks that are due.
type Service struct {
	users     *repository.UserRepository
	tasks     *repository.TaskRepository
	cron      *cron.Cron
	tzDefault string
}

func NewService(users *repository.UserRepository, tasks *repository.TaskRepository, tzDefault string) *Service {
	return &Service{
		users:     users,
		tasks:     tasks,
		cron:      cron.New(),
		tzDefault: tzDefault,
	}
}

// Start schedules the reminder sweep every interval and starts the cron
// loop.
func (s *Service) Start(every time.Duration) error {
	if every <= 0 {
		return fmt.Errorf("reminder interval must be positive")
	}
	spec := fmt.Sprintf("@every %ds", int(every.Seconds()))
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Service) sweep() {
	ctx := context.Background()

	users, err := s.users.ListReminderUsers(ctx)
	if err != nil {
		log.Printf("reminder sweep: %v", err)
		return
	}

	for _, u := range users {
		loc := s.location(u.Settings.Timezone)
		today := time.Now().In(loc).Format("2006-01-02")

		due, err := s.tasks.CountDue(ctx, u.Email, today)
		if err != nil {
			log.Printf("reminder for %s: %v", u.Email, err)
			continue
		}
		if due > 0 {
			log.Printf("reminder: %s has %d pending task(s) due by %s", u.Email, due, today)
		}
	}
}

func (s *Service) location(tz string) *time.Location {
	if tz == "" {
		tz = s.tzDefault
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc
	}
	if loc, err := time.LoadLocation(s.tzDefault); err == nil {
		return loc
	}
	return time.Local
}
