package usecase

import (
	"context"

	"zeneasy/internal/domain/entity"
)

// TokenOutput carries an issued session token.
type TokenOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase issues session tokens.
type AuthUsecase interface {
	// IssueUserToken issues a token for the verified user registered with email.
	IssueUserToken(ctx context.Context, email string) (*TokenOutput, error)

	// AdminLogin issues an admin token when the credentials match the admin identity.
	AdminLogin(ctx context.Context, email, password string) (*TokenOutput, error)
}
