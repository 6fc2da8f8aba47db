package auth

import (
	"zeneasy/config"
	"zeneasy/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher uses auth.bcryptCost when it is a valid bcrypt cost and
// bcrypt.DefaultCost otherwise.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{cost: bcrypt.DefaultCost}
	if cfg == nil || cfg.Auth == nil {
		return hasher
	}
	if cost := cfg.Auth.BcryptCost; cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		hasher.cost = cost
	}

	return hasher
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
