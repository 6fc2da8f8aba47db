package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackEntry is site-level feedback, distinct from service ratings.
type FeedbackEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
