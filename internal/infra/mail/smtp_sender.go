// Package mail delivers transactional email.
package mail

import (
	"context"
	"log/slog"

	"zeneasy/config"
	"zeneasy/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// dialer is the subset of *gomail.Dialer used by smtpSender.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// smtpSender implements service.EmailSender over SMTP with gomail.
type smtpSender struct {
	dialer dialer
	from   string
	logger *slog.Logger
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.MailConfig, logger *slog.Logger) service.EmailSender {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
		logger: logger,
	}
}

// Send delivers the email. It does not retry.
func (s *smtpSender) Send(ctx context.Context, email *service.Email) error {
	if email == nil || email.To == "" {
		return errors.New("email recipient is required")
	}

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "email send canceled")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Text)
	if email.HTML != "" {
		msg.AddAlternative("text/html", email.HTML)
	}

	if err := s.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	s.logger.DebugContext(ctx, "Email sent", slog.String("subject", email.Subject))

	return nil
}
