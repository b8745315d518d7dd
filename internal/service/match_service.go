package service

import (
	"context"
	"errors"

	"github.com/foundly-app/foundly-backend/internal/model"
	"github.com/foundly-app/foundly-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrForbidden = errors.New("forbidden")
var ErrAlreadyConfirmed = errors.New("already_confirmed")

type ConfirmStatus string

const (
	StatusPartiallyConfirmed ConfirmStatus = "PARTIALLY_CONFIRMED"
	StatusFullyConfirmed     ConfirmStatus = "FULLY_CONFIRMED"
)

// ConfirmResult reports the outcome of one confirmation call. On full
// confirmation Match is a snapshot of the record that has just been deleted.
type ConfirmResult struct {
	Status               ConfirmStatus
	Match                *model.Match
	UserConfirmed        string
	AwaitingConfirmation string
}

type MatchService interface {
	Create(ctx context.Context, item1ID, item2ID string) (*model.Match, error)
	GetAllByUser(ctx context.Context, uid string) ([]model.Match, error)
	Get(ctx context.Context, id string) (*model.Match, error)
	Delete(ctx context.Context, id string) error
	Confirm(ctx context.Context, matchID, userID string) (*ConfirmResult, error)
}

type matchService struct {
	matchRepo repository.MatchRepository
	notifRepo repository.NotificationRepository
	itemRepo  repository.ItemRepository
}

func NewMatchService(matchRepo repository.MatchRepository, notifRepo repository.NotificationRepository, itemRepo repository.ItemRepository) MatchService {
	return &matchService{matchRepo: matchRepo, notifRepo: notifRepo, itemRepo: itemRepo}
}

// Create proposes a match between two reports. Participants are the two
// reporters; both get a suggestion notification carrying the item pair.
func (s *matchService) Create(ctx context.Context, item1ID, item2ID string) (*model.Match, error) {
	if item1ID == "" || item2ID == "" {
		return nil, errors.New("item1Id and item2Id are required")
	}
	if item1ID == item2ID {
		return nil, errors.New("cannot match an item with itself")
	}
	item1, err := s.itemRepo.FindByID(ctx, item1ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	item2, err := s.itemRepo.FindByID(ctx, item2ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if item1.IsResolved || item2.IsResolved {
		return nil, errors.New("item already resolved")
	}

	m := &model.Match{
		UserID1: item1.ReporterUID,
		UserID2: item2.ReporterUID,
		Item1ID: item1.ID,
		Item2ID: item2.ID,
	}
	if err := s.matchRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	for _, uid := range []string{m.UserID1, m.UserID2} {
		_ = s.notifRepo.Create(ctx, &model.Notification{
			UserID:  uid,
			MatchID: m.ID,
			Type:    "match_suggested",
			Title:   "Possible match found",
			Body:    "A report that may match yours was found. Open the match to review it.",
			Item1ID: &m.Item1ID,
			Item2ID: &m.Item2ID,
		})
	}
	return m, nil
}

func (s *matchService) GetAllByUser(ctx context.Context, uid string) ([]model.Match, error) {
	return s.matchRepo.FindByUser(ctx, uid)
}

func (s *matchService) Get(ctx context.Context, id string) (*model.Match, error) {
	m, err := s.matchRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *matchService) Delete(ctx context.Context, id string) error {
	if _, err := s.matchRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.matchRepo.DeleteWithNotifications(ctx, id)
}

// Confirm records one participant's confirmation. When the second participant
// confirms, both items are resolved and the match plus everything hanging off
// it (notifications, chat, duplicate matches on the same item pair) is
// removed.
func (s *matchService) Confirm(ctx context.Context, matchID, userID string) (*ConfirmResult, error) {
	// Clear pending match notifications first, even if the match turns out
	// to be gone already.
	if err := s.notifRepo.DeleteByMatch(ctx, matchID); err != nil {
		return nil, err
	}

	m, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !m.HasUser(userID) {
		return nil, ErrForbidden
	}

	isUser1 := m.UserID1 == userID
	if (isUser1 && m.User1Confirmed) || (!isUser1 && m.User2Confirmed) {
		return nil, ErrAlreadyConfirmed
	}

	rows, err := s.matchRepo.SetConfirmed(ctx, matchID, isUser1)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Lost a race: the match was deleted, or a concurrent call of the
		// same role won the conditional update.
		if _, err := s.matchRepo.FindByID(ctx, matchID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return nil, ErrAlreadyConfirmed
	}

	updated, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if updated.User1Confirmed && updated.User2Confirmed {
		if err := s.matchRepo.FinalizeConfirmed(ctx, updated); err != nil {
			return nil, err
		}
		return &ConfirmResult{Status: StatusFullyConfirmed, Match: updated}, nil
	}

	res := &ConfirmResult{
		Status:               StatusPartiallyConfirmed,
		Match:                updated,
		UserConfirmed:        "user2",
		AwaitingConfirmation: "user1",
	}
	if isUser1 {
		res.UserConfirmed = "user1"
		res.AwaitingConfirmation = "user2"
	}
	return res, nil
}
