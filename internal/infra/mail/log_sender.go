package mail

import (
	"context"
	"log/slog"

	"zeneasy/internal/domain/service"
)

// logSender implements service.EmailSender by logging instead of sending.
// It is used when no SMTP host is configured.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender is the constructor for logSender.
func NewLogSender(logger *slog.Logger) service.EmailSender {
	return &logSender{logger: logger}
}

// Send logs the recipient and subject. The body is not logged.
func (s *logSender) Send(ctx context.Context, email *service.Email) error {
	s.logger.InfoContext(ctx, "Email delivery skipped, SMTP not configured",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
	)

	return nil
}
