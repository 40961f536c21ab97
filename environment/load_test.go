package environment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutVariablesKeepsBase(t *testing.T) {
	c, err := Load(Development(), LoadOptions{Environment: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, Development(), c)
}

func TestLoadOverridesSetVariables(t *testing.T) {
	var set []string
	c, err := Load(Development(), LoadOptions{
		Prefix: "APP_",
		Environment: map[string]string{
			"APP_PRODUCTION":         "true",
			"APP_API_SERVER_URL":     "https://api.example.org",
			"APP_AUTH0_CALLBACK_URL": "https://app.example.org",
			"API_SERVER_URL":         "http://ignored",
		},
		OnSet: func(name string) { set = append(set, name) },
	})
	require.NoError(t, err)

	assert.True(t, c.Production)
	assert.Equal(t, "https://api.example.org", c.APIServerURL)
	assert.Equal(t, "https://app.example.org", c.Auth0.CallbackURL)
	assert.Equal(t, Development().Auth0.ClientID, c.Auth0.ClientID)
	assert.ElementsMatch(t, []string{"APP_PRODUCTION", "APP_API_SERVER_URL", "APP_AUTH0_CALLBACK_URL"}, set)

	// base untouched
	assert.Equal(t, "http://127.0.0.1:5000", Development().APIServerURL)
}

func TestLoadFromProcessEnvironment(t *testing.T) {
	t.Setenv("LOADTEST_AUTH0_CLIENT_ID", "from-env")

	c, err := Load(Development(), LoadOptions{Prefix: "LOADTEST_"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.Auth0.ClientID)
}

func TestLoadInvalidBool(t *testing.T) {
	base := Development()
	c, err := Load(base, LoadOptions{Environment: map[string]string{"PRODUCTION": "maybe"}})
	assert.Error(t, err)
	assert.Equal(t, base, c)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "production.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"# deploy values\nAPP_PRODUCTION=true\nAPP_AUTH0_AUDIENCE=\"https://api.example.org\"\n",
	), 0o644))

	c, err := LoadFile(Development(), path, LoadOptions{Prefix: "APP_"})
	require.NoError(t, err)
	assert.True(t, c.Production)
	assert.Equal(t, "https://api.example.org", c.Auth0.Audience)
	assert.Equal(t, Development().APIServerURL, c.APIServerURL)

	_, err = LoadFile(Development(), filepath.Join(t.TempDir(), "missing.env"), LoadOptions{})
	assert.Error(t, err)
}
