package repository

import (
	"context"
	"errors"

	"github.com/foundly-app/foundly-backend/internal/model"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id string) (*model.Item, error)
	List(ctx context.Context, limit, offset int, typ string, includeResolved bool) ([]model.Item, int64, error)
	ListByReporter(ctx context.Context, reporterUID string) ([]model.Item, error)
	ListOpenByType(ctx context.Context, typ model.ItemType, excludeReporter string, limit int) ([]model.Item, error)
	UpdateImageURL(ctx context.Context, id, imageURL string) error
	SetDB(db *gorm.DB)
}

type itemRepository struct {
	db *gorm.DB
}

var ErrDBNotReady = errors.New("database not initialized")

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id string) (*model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var item model.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context, limit, offset int, typ string, includeResolved bool) ([]model.Item, int64, error) {
	if r.db == nil {
		return nil, 0, ErrDBNotReady
	}
	q := r.db.WithContext(ctx).Model(&model.Item{})
	if typ != "" {
		q = q.Where("type = ?", typ)
	}
	if !includeResolved {
		q = q.Where("is_resolved = ?", false)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []model.Item
	if err := q.Order("created_at desc").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *itemRepository) ListByReporter(ctx context.Context, reporterUID string) ([]model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Where("reporter_uid = ?", reporterUID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) ListOpenByType(ctx context.Context, typ model.ItemType, excludeReporter string, limit int) ([]model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	q := r.db.WithContext(ctx).
		Where("type = ? AND is_resolved = ?", typ, false)
	if excludeReporter != "" {
		q = q.Where("reporter_uid <> ?", excludeReporter)
	}
	var items []model.Item
	if err := q.Order("created_at desc").Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}

func (r *itemRepository) SetDB(db *gorm.DB) {
	r.db = db
}
