// Package notification delivers push notifications to user devices.
package notification

import (
	"context"
	"log/slog"

	"zeneasy/config"
	"zeneasy/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit of tokens per multicast request.
const maxMulticastTokens = 500

// multicastClient is the subset of *messaging.Client used here.
type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastClient
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendMulticast sends msg to every token in chunks of 500.
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushResult, error) {
	result := &service.PushResult{InvalidTokens: []string{}}

	for start := 0; start < len(tokens); start += maxMulticastTokens {
		end := min(start+maxMulticastTokens, len(tokens))
		chunk := tokens[start:end]

		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			return result, errors.Wrap(err, "failed to send multicast notification")
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				result.InvalidTokens = append(result.InvalidTokens, chunk[idx])
			}
		}
	}

	return result, nil
}

// logNotifier implements service.NotificationService by logging. It is used
// when Firebase is not configured.
type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) SendMulticast(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushResult, error) {
	n.logger.InfoContext(ctx, "Push delivery skipped, Firebase not configured",
		slog.Int("token_count", len(tokens)),
		slog.String("title", msg.Title),
	)

	return &service.PushResult{SuccessCount: len(tokens), InvalidTokens: []string{}}, nil
}

// Params defines the dependencies for the notification service
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService selects Firebase when configured, otherwise a logging notifier.
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "") {
		params.Logger.Warn("Firebase not configured, push notifications will only be logged")

		return &logNotifier{logger: params.Logger}, nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging", slog.String("project_id", cfg.ProjectID))

	return NewFirebaseService(params.Ctx, cfg)
}
