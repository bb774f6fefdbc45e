package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/lifeflow/pkg/entity"
)

// JWTServiceI issues and verifies the bearer tokens guarding /api/v1.
type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	// ParseToken fails for expired, foreign or malformed tokens
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims keeps the user id in the standard subject claim.
type JWTClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

func (c *JWTClaims) UID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}
