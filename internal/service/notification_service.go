package service

import (
	"context"
	"errors"
	"log"

	"github.com/foundly-app/foundly-backend/internal/model"
	"github.com/foundly-app/foundly-backend/internal/repository"
	"gorm.io/gorm"
)

type NotificationService interface {
	Notify(ctx context.Context, n *model.Notification)
	ListByUser(ctx context.Context, userID string) ([]model.Notification, error)
	Get(ctx context.Context, id string) (*model.Notification, error)
	Delete(ctx context.Context, id string) error
	MarkRead(ctx context.Context, id string) (*model.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

// Notify is best-effort; it logs errors but does not return them to avoid
// breaking main flows.
func (s *notificationService) Notify(ctx context.Context, n *model.Notification) {
	if n == nil || n.UserID == "" || n.Type == "" {
		return
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notify user=%s type=%s failed: %v", n.UserID, n.Type, err)
	}
}

func (s *notificationService) ListByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Notification{}
	}
	return list, nil
}

func (s *notificationService) Get(ctx context.Context, id string) (*model.Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) (*model.Notification, error) {
	n, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

// MarkAllRead returns the number of records flipped; zero is a valid outcome.
func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *notificationService) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	return s.repo.DeleteByUser(ctx, userID)
}
