package repository

import (
	"context"

	"github.com/foundly-app/foundly-backend/internal/model"
	"gorm.io/gorm"
)

type MatchRepository interface {
	Create(ctx context.Context, m *model.Match) error
	FindByID(ctx context.Context, id string) (*model.Match, error)
	FindByUser(ctx context.Context, uid string) ([]model.Match, error)
	// SetConfirmed flips one participant's confirmation flag. The flag value
	// is part of the WHERE clause, so a repeated confirm affects zero rows.
	SetConfirmed(ctx context.Context, id string, user1 bool) (int64, error)
	DeleteWithNotifications(ctx context.Context, id string) error
	FinalizeConfirmed(ctx context.Context, m *model.Match) error
	SetDB(db *gorm.DB)
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, m *model.Match) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *matchRepository) FindByID(ctx context.Context, id string) (*model.Match, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var m model.Match
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) FindByUser(ctx context.Context, uid string) ([]model.Match, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var list []model.Match
	if err := r.db.WithContext(ctx).
		Where("user_id1 = ? OR user_id2 = ?", uid, uid).
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *matchRepository) SetConfirmed(ctx context.Context, id string, user1 bool) (int64, error) {
	if r.db == nil {
		return 0, ErrDBNotReady
	}
	col := "user2_confirmed"
	if user1 {
		col = "user1_confirmed"
	}
	res := r.db.WithContext(ctx).
		Model(&model.Match{}).
		Where("id = ? AND "+col+" = ?", id, false).
		Update(col, true)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// DeleteWithNotifications removes a match and every notification pointing at
// it in one transaction, so a crash cannot leave orphaned notifications.
func (r *matchRepository) DeleteWithNotifications(ctx context.Context, id string) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&model.Notification{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Match{}).Error
	})
}

// FinalizeConfirmed runs the full-confirmation cleanup: both items become
// resolved and every match, notification, and chat message touching the match
// or its item pair (in either slot order) is removed.
func (r *matchRepository) FinalizeConfirmed(ctx context.Context, m *model.Match) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Item{}).
			Where("id = ?", m.Item1ID).
			Update("is_resolved", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Item{}).
			Where("id = ?", m.Item2ID).
			Update("is_resolved", true).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", m.ID).Delete(&model.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", m.ID).Delete(&model.ChatMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", m.ID).Delete(&model.Match{}).Error; err != nil {
			return err
		}
		pair := "item1_id = ? OR item2_id = ? OR item1_id = ? OR item2_id = ?"
		if err := tx.Where(pair, m.Item1ID, m.Item2ID, m.Item2ID, m.Item1ID).
			Delete(&model.Match{}).Error; err != nil {
			return err
		}
		return tx.Where(pair, m.Item1ID, m.Item2ID, m.Item2ID, m.Item1ID).
			Delete(&model.Notification{}).Error
	})
}

func (r *matchRepository) SetDB(db *gorm.DB) {
	r.db = db
}
