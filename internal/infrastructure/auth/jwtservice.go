package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookstore/internal/shared/biztime"
	"bookstore/internal/shared/config"
	apperrors "bookstore/internal/shared/errors"
)

// Claims carries the authenticated user identity.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTService signs and validates access tokens.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

func NewJWTService(cfg config.JWTConfig) (*JWTService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	expMinutes := cfg.AccessExpMinutes
	if expMinutes <= 0 {
		expMinutes = 60
	}
	return &JWTService{
		secret: []byte(cfg.Secret),
		expiry: time.Duration(expMinutes) * time.Minute,
	}, nil
}

// GenerateToken issues a signed access token for the user.
func (s *JWTService) GenerateToken(userID uint, email string) (string, error) {
	now := biztime.NowUTC()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "bookstore",
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies an access token.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, apperrors.NewUnauthorizedError("invalid token claims")
	}
	return claims, nil
}
