package auth

import (
	"testing"

	"zeneasy/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
	assert.False(t, hasher.Check("StrongPass123!", "not-a-hash"))
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "configured cost", cost: bcrypt.MinCost, want: bcrypt.MinCost},
		{name: "zero falls back", cost: 0, want: bcrypt.DefaultCost},
		{name: "too high falls back", cost: bcrypt.MaxCost + 1, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: tt.cost}})
			assert.Equal(t, tt.want, hasher.(*bcryptHasher).cost)
		})
	}
}
