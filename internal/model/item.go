package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemType string

const (
	ItemTypeLost  ItemType = "lost"
	ItemTypeFound ItemType = "found"
)

type Item struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Type        ItemType  `gorm:"column:type;size:16;not null;index" json:"type"`
	Title       string    `gorm:"size:120;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Location    string    `gorm:"size:255" json:"location"`
	ImageURL    *string   `gorm:"size:512" json:"imageUrl,omitempty"`
	ReporterUID string    `gorm:"column:reporter_uid;size:128;index" json:"reporterUid"`
	IsResolved  bool      `gorm:"column:is_resolved;not null;default:false" json:"isResolved"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Item) TableName() string {
	return "items"
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
