package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Match pairs a lost report with a found report. It is removed once both
// participants confirm, so a persisted match is always pending.
type Match struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID1        string    `gorm:"column:user_id1;size:128;index;not null" json:"userId1"`
	UserID2        string    `gorm:"column:user_id2;size:128;index;not null" json:"userId2"`
	Item1ID        string    `gorm:"column:item1_id;size:36;index;not null" json:"item1Id"`
	Item2ID        string    `gorm:"column:item2_id;size:36;index;not null" json:"item2Id"`
	User1Confirmed bool      `gorm:"column:user1_confirmed;not null;default:false" json:"user1Confirmed"`
	User2Confirmed bool      `gorm:"column:user2_confirmed;not null;default:false" json:"user2Confirmed"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Match) TableName() string {
	return "matches"
}

func (m *Match) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *Match) HasUser(uid string) bool {
	return m.UserID1 == uid || m.UserID2 == uid
}
