package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/pkg/entity"
	jwtservice "github.com/limbo/lifeflow/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	key := any([]byte(secret))
	if method == jwt.SigningMethodNone {
		key = jwt.UnsafeAllowNoneSignatureType
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestTokenRoundTrip(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Name: "test_user"}
	s := jwtservice.New("secret")

	token, err := s.GenerateToken(user)
	require.NoError(t, err)
	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	uid, err := claims.UID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, uid)
	assert.Equal(t, user.Name, claims.Username)
	assert.Equal(t, jwtservice.Issuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	_, err = s.GenerateToken(nil)
	assert.Error(t, err)
}

func TestParseTokenErrors(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Name: "test_user"}
	expired, err := jwtservice.New("secret").WithTTL(-time.Minute).GenerateToken(user)
	require.NoError(t, err)
	foreign, err := jwtservice.New("another").GenerateToken(user)
	require.NoError(t, err)
	exp := time.Now().Add(time.Hour).Unix()

	testCases := []struct {
		Desc  string
		Token string
	}{
		{"expired", expired},
		{"wrong secret", foreign},
		{"garbage", "not.a.token"},
		{"unsigned", sign(t, "secret", jwt.SigningMethodNone, jwt.MapClaims{"iss": jwtservice.Issuer, "sub": user.ID.String(), "exp": exp})},
		{"other issuer", sign(t, "secret", jwt.SigningMethodHS256, jwt.MapClaims{"iss": "someone", "sub": user.ID.String(), "exp": exp})},
		{"no expiration", sign(t, "secret", jwt.SigningMethodHS256, jwt.MapClaims{"iss": jwtservice.Issuer, "sub": user.ID.String()})},
		{"subject is not a uid", sign(t, "secret", jwt.SigningMethodHS256, jwt.MapClaims{"iss": jwtservice.Issuer, "sub": "admin", "exp": exp})},
	}
	s := jwtservice.New("secret")
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.ParseToken(tc.Token)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
		})
	}
}
