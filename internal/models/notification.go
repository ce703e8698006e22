package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types
const (
	NotificationStepGoal    = "step_goal"
	NotificationDayComplete = "day_complete"
	NotificationBadge       = "badge_earned"
)

type Notification struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	Type      string         `json:"type" gorm:"not null"` // step_goal, day_complete, badge_earned
	Title     string         `json:"title" gorm:"not null"`
	Body      string         `json:"body"`
	Read      bool           `json:"read" gorm:"default:false"`
	Metadata  *string        `json:"metadata"` // JSON string for navigation context (date, badgeId)
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// NotifiedKey records that a celebration of a given kind was already sent,
// e.g. kind "badge" with key "streak_7", or kind "step_goal" with a date.
type NotifiedKey struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_notified_user_kind_key"`
	Kind      string    `json:"kind" gorm:"not null;uniqueIndex:idx_notified_user_kind_key"`
	Key       string    `json:"key" gorm:"not null;uniqueIndex:idx_notified_user_kind_key"`
	CreatedAt time.Time `json:"createdAt"`
}

func (k *NotifiedKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}
