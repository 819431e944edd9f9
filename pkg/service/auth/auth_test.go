package auth

import (
	"testing"
	"time"

	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	svc := NewWithJWT(&config.Jwt{Secret: "secret", Expiry: time.Hour}, nil)
	fixed := time.Now().Truncate(time.Second)
	svc.now = func() time.Time { return fixed }

	signed, err := svc.GenerateToken("ops@example.com")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(*jwt.Token) (any, error) { return []byte("secret"), nil },
		jwt.WithValidMethods([]string{"HS256"}), jwt.WithIssuer(Issuer))
	require.NoError(t, err)

	sub, err := Subject(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", sub)

	exp, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(time.Hour).Unix(), exp.Unix())
}

func TestGenerateTokenErrors(t *testing.T) {
	_, err := NewWithJWT(&config.Jwt{Secret: "secret"}, nil).GenerateToken("")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewWithJWT(&config.Jwt{}, nil).GenerateToken("ops")
	assert.Error(t, err)
}

func TestSubjectRejectsEmpty(t *testing.T) {
	_, err := Subject(nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = Subject(jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{}))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
