package auth

import (
	"crypto/subtle"

	"zeneasy/config"
	"zeneasy/internal/domain/service"
)

// adminAuthenticator matches login input against the configured admin identity.
type adminAuthenticator struct {
	email        string
	password     string
	passwordHash string
	hasher       service.PasswordHasher
}

// NewAdminAuthenticator is the constructor for adminAuthenticator.
func NewAdminAuthenticator(cfg *config.Config, hasher service.PasswordHasher) service.AdminAuthenticator {
	return &adminAuthenticator{
		email:        cfg.Admin.Email,
		password:     cfg.Admin.Password,
		passwordHash: cfg.Admin.PasswordHash,
		hasher:       hasher,
	}
}

// Verify reports whether email and password identify the admin.
// Both comparisons are exact; a configured bcrypt hash replaces the plaintext password.
func (a *adminAuthenticator) Verify(email, password string) bool {
	if a.email == "" || email == "" {
		return false
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.email)) == 1

	var passwordOK bool
	switch {
	case a.passwordHash != "":
		passwordOK = a.hasher.Check(password, a.passwordHash)
	case a.password != "":
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	}

	return emailOK && passwordOK
}
