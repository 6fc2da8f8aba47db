package handler

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"zeneasy/config"
	"zeneasy/internal/domain/constants"
	"zeneasy/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler receives Pub/Sub push deliveries.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	processor      *EventProcessor
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Processor *EventProcessor
	Logger    *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config
	verifyPushAuth := cfg.PubSub != nil &&
		cfg.PubSub.Provider == constants.PubSubProviderGoogle &&
		cfg.Env.Env != constants.EnvDevelop

	var audience string
	if cfg.PubSub != nil {
		audience = cfg.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		processor:      params.Processor,
		logger:         params.Logger,
	}
}

// HandlePush acknowledges with 200 unless the failure is retryable, in which
// case 503 makes Pub/Sub redeliver.
func (h *PushHandler) HandlePush(c echo.Context) error {
	req := c.Request()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(req, h.audience); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	err = h.processor.Process(req.Context(), data, pushMsg.Message.Attributes["request_id"])
	switch {
	case err == nil:
		return c.NoContent(http.StatusOK)
	case errors.Is(err, ErrMalformedEvent):
		h.logger.Error("[Worker] Dropping malformed event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	case isRetryable(err):
		h.logger.Warn("[Worker] Event failed, requesting redelivery",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	default:
		h.logger.Error("[Worker] Event failed permanently",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}
}

// verifyPubSubToken checks the Google-signed OIDC token attached to push requests.
// An empty audience falls back to the URL of the endpoint itself.
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
