package cli

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mtsuhr/coffee-shop-env/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenFixture(t *testing.T, audience string) (token string, publicKeyPath string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	cfg := environment.Development()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss": cfg.Auth0.Issuer(),
		"sub": "auth0|barista",
		"aud": audience,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tok.Header["kid"] = "k1"
	token, err = tok.SignedString(key)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicKeyPath = filepath.Join(t.TempDir(), "tenant.pub")
	require.NoError(t, os.WriteFile(publicKeyPath, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), 0o644))

	return token, publicKeyPath
}

func TestTokenFromStdin(t *testing.T) {
	token, keyPath := newTokenFixture(t, environment.Development().Auth0.Audience)

	out, err := executeWithInput(t, token+"\n", "token", "-", "--public-key", keyPath)
	require.NoError(t, err)

	var report environment.TokenReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Verified)
	assert.True(t, report.AudienceMatch)
	assert.True(t, report.IssuerMatch)
	assert.Equal(t, "auth0|barista", report.Subject)
}

func TestTokenMismatchStillPrintsReport(t *testing.T) {
	token, _ := newTokenFixture(t, "https://other.example.org")

	out, err := execute(t, "token", token)
	assert.ErrorIs(t, err, environment.ErrTokenMismatch)

	var report environment.TokenReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Verified)
	assert.False(t, report.AudienceMatch)
}

func TestTokenEmpty(t *testing.T) {
	_, err := executeWithInput(t, "  \n", "token", "-")
	assert.EqualError(t, err, "empty token")
}

func TestTokenKeyFlagsAreExclusive(t *testing.T) {
	token, keyPath := newTokenFixture(t, environment.Development().Auth0.Audience)

	_, err := execute(t, "token", token, "--public-key", keyPath, "--jwks", keyPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")

	// flags of the previous run do not leak into the next
	_, err = execute(t, "token", token)
	assert.NoError(t, err)
}
