package jwtservice

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/lifeflow/internal/api"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/pkg/entity"
)

const (
	Issuer          = "lifeflow"
	defaultTokenTTL = 24 * time.Hour
)

type JWTService struct {
	secret   []byte
	tokenTTL time.Duration
	parser   *jwt.Parser
}

func New(secret string) *JWTService {
	return &JWTService{
		secret:   []byte(secret),
		tokenTTL: defaultTokenTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(Issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

// WithTTL changes the lifetime of generated tokens.
func (s *JWTService) WithTTL(ttl time.Duration) *JWTService {
	s.tokenTTL = ttl
	return s
}

func (s *JWTService) GenerateToken(user *entity.User) (string, error) {
	if user == nil {
		return "", errors.New("generating token for nil user")
	}
	now := time.Now()
	claims := &api.JWTClaims{
		Username: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTService) ParseToken(tokenString string) (*api.JWTClaims, error) {
	claims := &api.JWTClaims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidToken, errors.New("token parsing error: "+err.Error()))
	}
	if _, err = claims.UID(); err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidToken, errors.New("token subject is not a uid"))
	}
	return claims, nil
}
