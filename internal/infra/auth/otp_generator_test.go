package auth

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPGenerator_Format(t *testing.T) {
	generator := NewOTPGenerator()
	pattern := regexp.MustCompile(`^[0-9]{6}$`)

	for range 200 {
		code, err := generator.Generate()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}

func TestOTPGenerator_UsesEveryDigit(t *testing.T) {
	generator := NewOTPGenerator()
	seen := make(map[rune]int)

	for range 500 {
		code, err := generator.Generate()
		require.NoError(t, err)
		for _, r := range code {
			seen[r]++
		}
	}

	// 3000 uniform digits make a missing digit vanishingly unlikely.
	for d := '0'; d <= '9'; d++ {
		assert.Positive(t, seen[d], "digit %c never produced", d)
	}
}
