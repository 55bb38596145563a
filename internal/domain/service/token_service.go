package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
type TokenService interface {
	// GenerateAccessToken issues a token whose subject is userID.
	GenerateAccessToken(userID uuid.UUID) (token string, expiresAt time.Time, err error)

	// ValidateToken parses a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the fixed lifetime of issued tokens.
	AccessTokenTTL() time.Duration
}
