package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item1ID/Item2ID are only set on match-suggestion notifications; they let
// the confirmation cleanup sweep notifications by item pair as well as by
// match id.
type Notification struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"column:user_id;size:128;index;not null" json:"userId"`
	MatchID   string    `gorm:"column:match_id;size:36;index" json:"matchId"`
	Type      string    `gorm:"column:type;size:64;not null" json:"type"`
	Title     string    `gorm:"size:255" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Item1ID   *string   `gorm:"column:item1_id;size:36;index" json:"item1Id,omitempty"`
	Item2ID   *string   `gorm:"column:item2_id;size:36;index" json:"item2Id,omitempty"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false" json:"isRead"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
