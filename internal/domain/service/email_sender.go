package service

import "context"

// Email is an outbound message.
type Email struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// EmailSender delivers email. Errors are returned to the caller; no retry is performed.
type EmailSender interface {
	Send(ctx context.Context, email *Email) error
}
