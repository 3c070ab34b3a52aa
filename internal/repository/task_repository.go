package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskzen-go/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskFilter narrows List results. Empty or "All" priority/status means no
// filter; Search matches title or description case-insensitively.
type TaskFilter struct {
	Search   string
	Priority string
	Status   string
}

// TaskRepository handles task persistence. Every query and mutation is
// scoped by the owning user's email.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task for the user. Status is forced to Pending and
// the creation timestamp is set server-side regardless of input.
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	task.Status = models.StatusPending
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// List returns the user's tasks matching the filter, newest first.
func (r *TaskRepository) List(ctx context.Context, email string, filter TaskFilter) ([]models.Task, error) {
	query := r.db.WithContext(ctx).Where("user_email = ?", email).Order("created_at desc")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}
	if filter.Priority != "" && filter.Priority != "All" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Status != "" && filter.Status != "All" {
		query = query.Where("status = ?", filter.Status)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// TaskUpdate carries the editable fields of a task.
type TaskUpdate struct {
	Title       string
	Description string
	Priority    string
	Status      string
}

// Update rewrites the editable fields of the user's task. A task that does
// not exist or belongs to someone else yields ErrTaskNotFound.
func (r *TaskRepository) Update(ctx context.Context, email string, id uint, upd TaskUpdate) error {
	res := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ? AND user_email = ?", id, email).
		Updates(map[string]interface{}{
			"title":       upd.Title,
			"description": upd.Description,
			"priority":    upd.Priority,
			"status":      upd.Status,
		})
	if res.Error != nil {
		return fmt.Errorf("update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes the user's task. Deletion is physical and immediate.
func (r *TaskRepository) Delete(ctx context.Context, email string, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_email = ?", id, email).
		Delete(&models.Task{})
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Complete sets the task status to Completed. Completing an already
// completed task is a success.
func (r *TaskRepository) Complete(ctx context.Context, email string, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ? AND user_email = ?", id, email).
		Update("status", models.StatusCompleted)
	if res.Error != nil {
		return fmt.Errorf("complete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// CompleteByTitle marks the user's task with the given title (matched
// case-insensitively) as Completed. It reports whether a row changed.
func (r *TaskRepository) CompleteByTitle(ctx context.Context, email, title string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("user_email = ? AND LOWER(title) = LOWER(?)", email, title).
		Update("status", models.StatusCompleted)
	if res.Error != nil {
		return false, fmt.Errorf("complete task by title: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteByTitle removes the user's task with the given title (matched
// case-insensitively). It reports whether a row was removed.
func (r *TaskRepository) DeleteByTitle(ctx context.Context, email, title string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_email = ? AND LOWER(title) = LOWER(?)", email, title).
		Delete(&models.Task{})
	if res.Error != nil {
		return false, fmt.Errorf("delete task by title: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// CountDue returns the user's pending tasks due on or before the given
// date (YYYY-MM-DD).
func (r *TaskRepository) CountDue(ctx context.Context, email, date string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("user_email = ? AND status = ? AND due_date <> '' AND due_date <= ?",
			email, models.StatusPending, date).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count due tasks: %w", err)
	}
	return count, nil
}
