package mail

import (
	"log/slog"

	"zeneasy/config"
	"zeneasy/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines the dependencies for the email sender
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEmailSender selects the SMTP sender when a host is configured, otherwise the log sender.
func NewEmailSender(params Params) service.EmailSender {
	if params.Config.Mail == nil || params.Config.Mail.Host == "" {
		params.Logger.Warn("SMTP host not configured, emails will only be logged")

		return NewLogSender(params.Logger)
	}

	params.Logger.Info("Using SMTP email sender",
		slog.String("host", params.Config.Mail.Host),
		slog.Int("port", params.Config.Mail.Port),
	)

	return NewSMTPSender(params.Config.Mail, params.Logger)
}
