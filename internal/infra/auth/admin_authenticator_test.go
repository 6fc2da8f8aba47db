package auth

import (
	"testing"

	"zeneasy/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminAuthenticator_PlainPassword(t *testing.T) {
	cfg := &config.Config{Admin: config.AdminConfig{Email: "admin@zeneasy.com", Password: "s3cret"}}
	authenticator := NewAdminAuthenticator(cfg, NewBcryptHasher(nil))

	assert.True(t, authenticator.Verify("admin@zeneasy.com", "s3cret"))
	assert.False(t, authenticator.Verify("admin@zeneasy.com", "S3cret"))
	assert.False(t, authenticator.Verify("Admin@zeneasy.com", "s3cret"))
	assert.False(t, authenticator.Verify("admin@zeneasy.com ", "s3cret"))
	assert.False(t, authenticator.Verify("", ""))
}

func TestAdminAuthenticator_PasswordHashWins(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{Admin: config.AdminConfig{
		Email:        "admin@zeneasy.com",
		Password:     "plain-secret",
		PasswordHash: string(hash),
	}}
	authenticator := NewAdminAuthenticator(cfg, NewBcryptHasher(nil))

	assert.True(t, authenticator.Verify("admin@zeneasy.com", "hashed-secret"))
	assert.False(t, authenticator.Verify("admin@zeneasy.com", "plain-secret"))
}

func TestAdminAuthenticator_Unconfigured(t *testing.T) {
	authenticator := NewAdminAuthenticator(&config.Config{}, NewBcryptHasher(nil))

	assert.False(t, authenticator.Verify("", ""))
	assert.False(t, authenticator.Verify("admin@zeneasy.com", ""))
}
