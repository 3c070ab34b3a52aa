package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskzen-go/internal/models"
)

const owner = "alice@example.com"

func seedTask(t *testing.T, repo *TaskRepository, task models.Task) models.Task {
	t.Helper()
	if task.UserEmail == "" {
		task.UserEmail = owner
	}
	require.NoError(t, repo.Create(context.Background(), &task))
	return task
}

func TestCreateForcesPending(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	task := models.Task{
		UserEmail: owner,
		Title:     "buy milk",
		Status:    models.StatusCompleted, // client-supplied status is ignored
	}
	require.NoError(t, repo.Create(context.Background(), &task))

	assert.Equal(t, models.StatusPending, task.Status)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestListFilters(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	seedTask(t, repo, models.Task{Title: "Buy milk", Description: "from the corner shop", Priority: models.PriorityHigh, DueDate: "2024-06-01"})
	seedTask(t, repo, models.Task{Title: "Walk dog", Priority: models.PriorityLow})
	seedTask(t, repo, models.Task{Title: "Other user", UserEmail: "bob@example.com"})

	all, err := repo.List(ctx, owner, TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2, "list is scoped to the owner")

	bySearch, err := repo.List(ctx, owner, TaskFilter{Search: "MILK"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Buy milk", bySearch[0].Title)
	assert.Equal(t, "2024-06-01", bySearch[0].DueDate)

	byDescription, err := repo.List(ctx, owner, TaskFilter{Search: "corner"})
	require.NoError(t, err)
	assert.Len(t, byDescription, 1)

	byPriority, err := repo.List(ctx, owner, TaskFilter{Priority: models.PriorityHigh})
	require.NoError(t, err)
	assert.Len(t, byPriority, 1)

	allMeansNoFilter, err := repo.List(ctx, owner, TaskFilter{Priority: "All", Status: "All"})
	require.NoError(t, err)
	assert.Len(t, allMeansNoFilter, 2)
}

func TestUpdateScopedToOwner(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	task := seedTask(t, repo, models.Task{Title: "buy milk"})

	err := repo.Update(ctx, "mallory@example.com", task.ID, TaskUpdate{Title: "stolen"})
	assert.ErrorIs(t, err, ErrTaskNotFound, "another user's id must not be mutable")

	require.NoError(t, repo.Update(ctx, owner, task.ID, TaskUpdate{
		Title:    "buy oat milk",
		Priority: models.PriorityHigh,
		Status:   models.StatusPending,
	}))

	got, err := repo.List(ctx, owner, TaskFilter{})
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", got[0].Title)
}

func TestUpdateMissingTask(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))

	err := repo.Update(context.Background(), owner, 9999, TaskUpdate{Title: "x"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteScopedToOwner(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	task := seedTask(t, repo, models.Task{Title: "buy milk"})

	assert.ErrorIs(t, repo.Delete(ctx, "mallory@example.com", task.ID), ErrTaskNotFound)
	require.NoError(t, repo.Delete(ctx, owner, task.ID))

	remaining, err := repo.List(ctx, owner, TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestCompleteIdempotent(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	task := seedTask(t, repo, models.Task{Title: "buy milk"})

	require.NoError(t, repo.Complete(ctx, owner, task.ID))
	require.NoError(t, repo.Complete(ctx, owner, task.ID), "completing twice is the same success")

	got, err := repo.List(ctx, owner, TaskFilter{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got[0].Status)
}

func TestCompleteByTitleCaseInsensitive(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	seedTask(t, repo, models.Task{Title: "Buy Milk"})

	ok, err := repo.CompleteByTitle(ctx, owner, "buy milk")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CompleteByTitle(ctx, owner, "no such task")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteByTitle(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	seedTask(t, repo, models.Task{Title: "Buy Milk"})

	ok, err := repo.DeleteByTitle(ctx, owner, "BUY MILK")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.DeleteByTitle(ctx, owner, "buy milk")
	require.NoError(t, err)
	assert.False(t, ok, "already deleted")
}

func TestCountDue(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	seedTask(t, repo, models.Task{Title: "overdue", DueDate: "2024-01-01"})
	seedTask(t, repo, models.Task{Title: "future", DueDate: "2099-01-01"})
	seedTask(t, repo, models.Task{Title: "no due date"})

	count, err := repo.CountDue(ctx, owner, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
