package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"zeneasy/config"
	deliverycontext "zeneasy/internal/delivery/context"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultOTPEmailSubject = "Your Zen Easy verification code"

type otpService struct {
	userRepo     repository.UserRepository
	generator    service.CodeGenerator
	emailSender  service.EmailSender
	limiter      service.AttemptLimiter
	tokenService service.TokenService
	metrics      service.MetricsRecorder
	subject      string
	ttl          time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// OTPServiceParams holds dependencies for the OTP service, injected by Fx.
type OTPServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Generator    service.CodeGenerator
	EmailSender  service.EmailSender
	Limiter      service.AttemptLimiter
	TokenService service.TokenService
	Metrics      service.MetricsRecorder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOTPService is the constructor for otpService.
func NewOTPService(params OTPServiceParams) usecase.OTPUsecase {
	srv := &otpService{
		userRepo:     params.UserRepo,
		generator:    params.Generator,
		emailSender:  params.EmailSender,
		limiter:      params.Limiter,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		subject:      defaultOTPEmailSubject,
		now:          time.Now,
		logger:       params.Logger,
	}

	if cfg := params.Config.OTP; cfg != nil {
		srv.ttl = cfg.TTL
		if cfg.EmailSubject != "" {
			srv.subject = cfg.EmailSubject
		}
	}

	return srv
}

func (srv *otpService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Generate overwrites the stored code and emails it to the user.
// When delivery fails the new code stays stored.
func (srv *otpService) Generate(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.metrics.OTPIssued(service.OutcomeFailure)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("cannot issue code for unknown user")
		}

		return errors.Wrap(err, "failed to load user for code generation")
	}

	code, err := srv.generator.Generate()
	if err != nil {
		srv.metrics.OTPIssued(service.OutcomeFailure)

		return errors.Wrap(err, "failed to generate code")
	}

	if err := srv.userRepo.SetOTP(ctx, user.ID, code, srv.now().UTC()); err != nil {
		srv.metrics.OTPIssued(service.OutcomeFailure)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user disappeared while issuing code")
		}

		return errors.Wrap(err, "failed to store code")
	}

	// A fresh code restarts the attempt budget.
	if err := srv.limiter.Reset(ctx, user.ID.String()); err != nil {
		srv.log(ctx).Warn("Failed to reset OTP attempt counter", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	if err := srv.emailSender.Send(ctx, srv.buildEmail(user.Email, user.Name, code)); err != nil {
		srv.metrics.OTPIssued(service.OutcomeFailure)
		srv.log(ctx).Error("Failed to deliver verification email", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrEmailDeliveryFailed, err.Error())
	}

	srv.metrics.OTPIssued(service.OutcomeSuccess)
	srv.log(ctx).Info("Verification code issued", slog.Any("userID", user.ID))

	return nil
}

// Validate consumes the stored code when it equals the submission exactly.
func (srv *otpService) Validate(ctx context.Context, userID uuid.UUID, code string) (*usecase.VerifyOutput, error) {
	key := userID.String()

	blocked, err := srv.limiter.Blocked(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check attempt limit")
	}
	if blocked {
		srv.metrics.OTPValidated(service.OutcomeBlocked)

		return nil, domainerrors.ErrOTPAttemptsExceeded.WrapMessage("attempt limit reached")
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("cannot validate code for unknown user")
		}

		return nil, errors.Wrap(err, "failed to load user for code validation")
	}

	// The empty submission never matches; the stored value is guarded by the conditional update.
	if code == "" {
		return nil, srv.rejectCode(ctx, key)
	}

	if err := srv.userRepo.ConsumeOTP(ctx, userID, code); err != nil {
		if errors.Is(err, repository.ErrOTPMismatch) {
			return nil, srv.rejectCode(ctx, key)
		}

		return nil, errors.Wrap(err, "failed to consume code")
	}

	if err := srv.limiter.Reset(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to reset OTP attempt counter", slog.Any("userID", userID), slog.Any("error", err))
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload verified user")
	}

	// The code is spent and the user verified either way; inactive users get no token.
	if user.Status != "" && !user.Status.IsActive() {
		srv.metrics.OTPValidated(service.OutcomeSuccess)
		srv.log(ctx).Info("Inactive user verified without token", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrUserInactive.WrapMessage("inactive users cannot sign in")
	}

	token, err := srv.tokenService.IssueUserToken(user.ID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.metrics.OTPValidated(service.OutcomeSuccess)
	srv.log(ctx).Info("User verified", slog.Any("userID", user.ID))

	return &usecase.VerifyOutput{User: user, Token: token}, nil
}

// SweepExpired clears codes older than the configured TTL. Without a TTL codes never expire.
func (srv *otpService) SweepExpired(ctx context.Context) (int64, error) {
	if srv.ttl <= 0 {
		return 0, nil
	}

	cleared, err := srv.userRepo.ClearExpiredOTPs(ctx, srv.now().UTC().Add(-srv.ttl))
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear expired codes")
	}

	if cleared > 0 {
		srv.log(ctx).Info("Expired verification codes cleared", slog.Int64("count", cleared))
	}

	return cleared, nil
}

func (srv *otpService) rejectCode(ctx context.Context, key string) error {
	srv.metrics.OTPValidated(service.OutcomeFailure)

	if _, err := srv.limiter.RecordFailure(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to record OTP failure", slog.String("key", key), slog.Any("error", err))
	}

	return domainerrors.ErrOTPInvalid.WrapMessage("code does not match")
}

func (srv *otpService) buildEmail(to, name, code string) *service.Email {
	return &service.Email{
		To:      to,
		Subject: srv.subject,
		Text:    fmt.Sprintf("Hello %s,\n\nYour verification code is %s.\n", name, code),
		HTML:    fmt.Sprintf("<p>Hello %s,</p><p>Your verification code is <strong>%s</strong>.</p>", name, code),
	}
}
