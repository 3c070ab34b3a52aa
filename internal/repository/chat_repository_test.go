package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskzen-go/internal/models"
)

func TestHistoryChronological(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		turn := &models.ChatTurn{
			UserEmail: "alice@example.com",
			Message:   fmt.Sprintf("message %d", i),
			Reply:     fmt.Sprintf("reply %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Append(ctx, turn))
	}

	history, err := repo.History(ctx, "alice@example.com", 20)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "message 0", history[0].Message, "oldest first")
	assert.Equal(t, "message 2", history[2].Message)
}

func TestHistoryLimitKeepsNewest(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, &models.ChatTurn{
			UserEmail: "alice@example.com",
			Message:   fmt.Sprintf("message %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	history, err := repo.History(ctx, "alice@example.com", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "message 3", history[0].Message, "the most recent turns, ascending")
	assert.Equal(t, "message 4", history[1].Message)
}

func TestHistoryScopedToUser(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &models.ChatTurn{UserEmail: "alice@example.com", Message: "hi"}))
	require.NoError(t, repo.Append(ctx, &models.ChatTurn{UserEmail: "bob@example.com", Message: "yo"}))

	history, err := repo.History(ctx, "alice@example.com", 20)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
