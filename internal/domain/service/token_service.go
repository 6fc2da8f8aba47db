// Package service declares the ports the use cases call out to.
package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by session tokens.
// User tokens carry UserID, admin tokens carry Role.
type Claims struct {
	UserID string `json:"userId,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
type TokenService interface {
	// IssueUserToken signs a token embedding the user id.
	IssueUserToken(userID string) (string, error)

	// IssueAdminToken signs a token embedding the admin role claim.
	IssueAdminToken() (string, error)

	// ValidateToken verifies signature and expiry and returns the decoded claims.
	ValidateToken(tokenString string) (*Claims, error)
}

// AdminAuthenticator checks login input against the configured admin identity.
type AdminAuthenticator interface {
	// Verify reports whether email and password identify the admin.
	Verify(email, password string) bool
}

// PasswordHasher checks passwords against stored hashes. Only the admin
// login has a password; users verify by email OTP.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
