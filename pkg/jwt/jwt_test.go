package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hareware-api/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateParse_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tok, err := jwt.GenerateAt(secret, "alice", "hareware-api", 3, 60, now)
	require.NoError(t, err)

	claims, err := jwt.ParseAt(secret, tok, now.Add(59*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "hareware-api", claims.Issuer)
	assert.Equal(t, 3, claims.AccessLevel)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestParse_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tok, err := jwt.GenerateAt(secret, "alice", "", 1, 60, now)
	require.NoError(t, err)

	_, err = jwt.ParseAt(secret, tok, now.Add(61*time.Minute))
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := jwt.Generate(secret, "alice", "", 1, 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", tok)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestParse_RechazaAlgNone(t *testing.T) {
	claims := gojwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, tok)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := jwt.Parse(secret, "no.es.token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestGenerate_SinSecret(t *testing.T) {
	_, err := jwt.Generate("", "alice", "", 1, 60)
	assert.Error(t, err)
}

func TestParse_ValidoHastaExpInclusive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tok, err := jwt.GenerateAt(secret, "alice", "", 1, 10, now)
	require.NoError(t, err)

	_, err = jwt.ParseAt(secret, tok, now.Add(10*time.Minute))
	assert.NoError(t, err)
	_, err = jwt.ParseAt(secret, tok, now.Add(10*time.Minute+time.Second))
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
