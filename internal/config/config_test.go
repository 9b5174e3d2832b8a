package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseServer_Defaults(t *testing.T) {
	t.Parallel()
	c, err := ParseServer([]string{"-dsn", "postgres://x", "-jwt-key", "k"}, envMap(nil), io.Discard)
	require.NoError(t, err)
	require.Equal(t, ":8443", c.Addr)
	require.Equal(t, time.Hour, c.AccessTTL)
	require.EqualValues(t, 3, c.SignupBonus)
	require.EqualValues(t, 1, c.DailyBonus)
	require.EqualValues(t, 50, c.MaxGuestMerge)
	require.Equal(t, time.UTC, c.Loc())
}

func TestParseServer_EnvFallbackAndFlagPrecedence(t *testing.T) {
	t.Parallel()
	env := envMap(map[string]string{
		"KLOZE_DSN":          "postgres://env",
		"KLOZE_JWT_KEY":      "envkey",
		"KLOZE_SIGNUP_BONUS": "7",
		"KLOZE_ACCESS_TTL":   "2h",
		"KLOZE_LOCATION":     "Europe/Berlin",
	})
	c, err := ParseServer([]string{"-signup-bonus", "4"}, env, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "postgres://env", c.DSN)
	require.Equal(t, "envkey", c.JWTKey)
	require.EqualValues(t, 4, c.SignupBonus)
	require.Equal(t, 2*time.Hour, c.AccessTTL)
	require.Equal(t, "Europe/Berlin", c.Loc().String())
}

func TestParseServer_Validation(t *testing.T) {
	t.Parallel()
	_, err := ParseServer(nil, envMap(nil), io.Discard)
	require.ErrorContains(t, err, "dsn")
	require.ErrorContains(t, err, "jwt")

	_, err = ParseServer([]string{"-dsn", "d", "-jwt-key", "k", "-tls-cert", "c.pem"}, envMap(nil), io.Discard)
	require.ErrorContains(t, err, "tls")

	_, err = ParseServer([]string{"-dsn", "d", "-jwt-key", "k", "-location", "Mars/Olympus"}, envMap(nil), io.Discard)
	require.ErrorContains(t, err, "location")

	_, err = ParseServer([]string{"-dsn", "d", "-jwt-key", "k", "-ad-reward", "-1"}, envMap(nil), io.Discard)
	require.ErrorContains(t, err, "ad-reward")
}

func TestRegisterClient(t *testing.T) {
	t.Parallel()
	fs := flag.NewFlagSet("kloze", flag.ContinueOnError)
	c := RegisterClient(fs, envMap(map[string]string{
		"XDG_CONFIG_HOME":      "/cfg",
		"KLOZE_S3_BUCKET":      "b",
		"KLOZE_S3_REGION":      "r",
		"KLOZE_EFFECT_TIMEOUT": "5s",
	}))
	require.NoError(t, fs.Parse([]string{"-addr", "h:1", "-plaintext"}))
	require.NoError(t, c.Validate())
	require.Equal(t, "h:1", c.Addr)
	require.Equal(t, filepath.Join("/cfg", "kloze"), c.DataDir)
	require.Equal(t, 5*time.Second, c.EffectTimeout)
	require.Equal(t, "b", c.S3.Bucket)
	require.False(t, c.UploadsEnabled())

	c.Insecure = true
	require.Error(t, c.Validate())
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("KLOZE_TEST_DOTENV=from-file\n"), 0o600))
	t.Setenv("KLOZE_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("KLOZE_TEST_DOTENV"))
	require.NoError(t, LoadDotEnv(p))
	require.Equal(t, "from-file", os.Getenv("KLOZE_TEST_DOTENV"))
}
