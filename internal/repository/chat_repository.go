package repository

import (
	"context"

	"github.com/foundly-app/foundly-backend/internal/model"
	"gorm.io/gorm"
)

type ChatRepository interface {
	CreateMessage(ctx context.Context, msg *model.ChatMessage) error
	ListByMatch(ctx context.Context, matchID string) ([]model.ChatMessage, error)
	SetDB(db *gorm.DB)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateMessage(ctx context.Context, msg *model.ChatMessage) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *chatRepository) ListByMatch(ctx context.Context, matchID string) ([]model.ChatMessage, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var msgs []model.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *chatRepository) SetDB(db *gorm.DB) {
	r.db = db
}
