package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskzen-go/internal/models"
)

// ChatRepository handles the append-only chat-history log.
type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// Append records one exchange.
func (r *ChatRepository) Append(ctx context.Context, turn *models.ChatTurn) error {
	if err := r.db.WithContext(ctx).Create(turn).Error; err != nil {
		return fmt.Errorf("append chat turn: %w", err)
	}
	return nil
}

// History returns the user's most recent turns, at most limit, in
// chronological ascending order.
func (r *ChatRepository) History(ctx context.Context, email string, limit int) ([]models.ChatTurn, error) {
	var turns []models.ChatTurn
	if err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at desc").
		Limit(limit).
		Find(&turns).Error; err != nil {
		return nil, fmt.Errorf("chat history: %w", err)
	}
	// Fetched newest-first for the limit; present oldest-first.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}
