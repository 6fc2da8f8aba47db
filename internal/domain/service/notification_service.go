package service

import (
	"context"
)

// PushMessage is the payload delivered to every device of a recipient.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult summarizes a multicast delivery.
type PushResult struct {
	SuccessCount int
	FailureCount int
	// InvalidTokens are tokens the provider reported as unregistered or malformed.
	InvalidTokens []string
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendMulticast delivers msg to every token. Partial failures are reported in
	// the result, not as an error.
	SendMulticast(ctx context.Context, tokens []string, msg *PushMessage) (*PushResult, error)
}
