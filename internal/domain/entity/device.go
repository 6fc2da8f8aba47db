package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device platforms accepted for push registration.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// UserDevice represents a user's device registered for push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	FCMToken  string    `json:"fcmToken"`
	DeviceID  string    `json:"deviceId"` // Unique device identifier from the client.
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
