// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"zeneasy/config"
	"zeneasy/internal/domain/constants"
	"zeneasy/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// IssueUserToken signs a token embedding the user id.
func (s *jwtService) IssueUserToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user id must not be empty")
	}

	return s.sign(&service.Claims{UserID: userID})
}

// IssueAdminToken signs a token embedding the admin role claim.
func (s *jwtService) IssueAdminToken() (string, error) {
	return s.sign(&service.Claims{Role: constants.ClaimRoleAdmin})
}

// ValidateToken verifies signature and expiry and returns the decoded claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.UserID == "" && claims.Role == "" {
		return nil, errors.New("token carries neither user id nor role")
	}

	return claims, nil
}

func (s *jwtService) sign(claims *service.Claims) (string, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
