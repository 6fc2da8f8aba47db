package auth

import (
	"crypto/rand"
	"math/big"

	"zeneasy/internal/domain/service"

	"github.com/pkg/errors"
)

// OTPLength is the number of decimal digits in a one-time code.
const OTPLength = 6

// otpGenerator draws codes from crypto/rand so every digit is uniform on 0-9.
type otpGenerator struct{}

// NewOTPGenerator is the constructor for otpGenerator.
func NewOTPGenerator() service.CodeGenerator {
	return &otpGenerator{}
}

// Generate returns a 6-digit code. Leading zeros are kept.
func (g *otpGenerator) Generate() (string, error) {
	code := make([]byte, OTPLength)
	ten := big.NewInt(10)

	for i := range code {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random digit")
		}
		code[i] = byte('0' + n.Int64())
	}

	return string(code), nil
}
