package middleware

import (
	"strings"

	"zeneasy/internal/delivery/api/response"
	deliverycontext "zeneasy/internal/delivery/context"
	"zeneasy/internal/domain/constants"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const claimsKey = "claims"

// AuthMiddleware provides middleware for bearer token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(claimsKey, claims)
		if claims.UserID != "" {
			ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireAdmin rejects tokens without the admin role claim.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsAdmin(c) {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: admin role required")
		}

		return next(c)
	}
}

// RequireUser rejects tokens that do not identify a user.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetUserID(c); !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: user token required")
		}

		return next(c)
	}
}

// GetClaims returns the claims stored by Authenticate.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)

	return claims, ok && claims != nil
}

// GetUserID returns the user id embedded in the token.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	claims, ok := GetClaims(c)
	if !ok || claims.UserID == "" {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// IsAdmin reports whether the token carries the admin role.
func IsAdmin(c echo.Context) bool {
	claims, ok := GetClaims(c)

	return ok && claims.Role == constants.ClaimRoleAdmin
}

// GetActor describes the caller for ownership checks.
func GetActor(c echo.Context) usecase.Actor {
	userID, _ := GetUserID(c)

	return usecase.Actor{UserID: userID, IsAdmin: IsAdmin(c)}
}
