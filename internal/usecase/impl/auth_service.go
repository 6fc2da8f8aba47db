package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "zeneasy/internal/delivery/context"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type authService struct {
	userRepo      repository.UserRepository
	tokenService  service.TokenService
	authenticator service.AdminAuthenticator
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	TokenService  service.TokenService
	Authenticator service.AdminAuthenticator
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:      params.UserRepo,
		tokenService:  params.TokenService,
		authenticator: params.Authenticator,
		logger:        params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueUserToken issues a token for the oldest user registered with email.
// Only verified, active users receive one.
func (srv *authService) IssueUserToken(ctx context.Context, email string) (*usecase.TokenOutput, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no user registered with this email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.IsVerified {
		return nil, domainerrors.ErrUserNotVerified.WrapMessage("verify the email before requesting a token")
	}
	if user.Status != "" && !user.Status.IsActive() {
		return nil, domainerrors.ErrUserInactive.WrapMessage("inactive users cannot sign in")
	}

	token, err := srv.tokenService.IssueUserToken(user.ID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue user token")
	}

	srv.log(ctx).Info("User token issued", slog.Any("userID", user.ID))

	return &usecase.TokenOutput{Token: token, User: user}, nil
}

// AdminLogin issues an admin token for the configured admin identity.
func (srv *authService) AdminLogin(ctx context.Context, email, password string) (*usecase.TokenOutput, error) {
	if !srv.authenticator.Verify(email, password) {
		srv.log(ctx).Warn("Admin login rejected")

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("admin credentials do not match")
	}

	token, err := srv.tokenService.IssueAdminToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue admin token")
	}

	srv.log(ctx).Info("Admin token issued")

	return &usecase.TokenOutput{Token: token}, nil
}
