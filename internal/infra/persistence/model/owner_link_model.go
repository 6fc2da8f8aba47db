package model

import (
	"time"

	"github.com/google/uuid"
)

// OwnerLinkModel mirrors the 'owner_links' table, the owner -> child index.
// It deliberately has no foreign keys so deletes never cascade.
type OwnerLinkModel struct {
	OwnerID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      string    `gorm:"type:varchar(10);primaryKey"`
	ChildID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OwnerLinkModel) TableName() string {
	return "owner_links"
}
