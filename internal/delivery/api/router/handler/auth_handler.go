package handler

import (
	"log/slog"
	"net/http"

	"zeneasy/internal/delivery/api/response"
	"zeneasy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler issues session tokens.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// IssueTokenRequest asks for a user token by email.
type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AdminLoginRequest carries the admin credentials.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// IssueToken issues a user token for a verified user.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.IssueUserToken(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"token": output.Token,
		"user":  output.User,
	}, "Token issued")
}

// AdminLogin issues an admin token.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req AdminLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": output.Token}, "Admin login successful")
}
