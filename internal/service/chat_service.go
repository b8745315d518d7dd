package service

import (
	"context"
	"errors"

	"github.com/foundly-app/foundly-backend/internal/model"
	"github.com/foundly-app/foundly-backend/internal/repository"
	"gorm.io/gorm"
)

type ChatService interface {
	ListMessages(ctx context.Context, matchID, uid string) ([]model.ChatMessage, error)
	PostMessage(ctx context.Context, matchID, uid, body string) (*model.ChatMessage, error)
}

type chatService struct {
	chatRepo  repository.ChatRepository
	matchRepo repository.MatchRepository
}

func NewChatService(chatRepo repository.ChatRepository, matchRepo repository.MatchRepository) ChatService {
	return &chatService{chatRepo: chatRepo, matchRepo: matchRepo}
}

func (s *chatService) ListMessages(ctx context.Context, matchID, uid string) ([]model.ChatMessage, error) {
	m, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !m.HasUser(uid) {
		return nil, ErrForbidden
	}
	return s.chatRepo.ListByMatch(ctx, matchID)
}

func (s *chatService) PostMessage(ctx context.Context, matchID, uid, body string) (*model.ChatMessage, error) {
	if body == "" {
		return nil, errors.New("body is required")
	}
	m, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !m.HasUser(uid) {
		return nil, ErrForbidden
	}
	msg := &model.ChatMessage{
		MatchID:   matchID,
		SenderUID: uid,
		Body:      body,
	}
	if err := s.chatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
