package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel mirrors the 'feedback_entries' table.
type FeedbackModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Text      string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null;check:rating >= 0 AND rating <= 5"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback_entries"
}
