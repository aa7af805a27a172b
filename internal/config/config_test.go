package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"PORT", "DB_DRIVER", "DB_PATH", "DATABASE_URL", "MAX_CONTENT_LENGTH",
	"STRICT_LIKES", "LOG_LEVEL", "CORS_ORIGINS",
}

// clearEnv blanks every setting for the duration of the test.
// t.Setenv restores the previous values afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "does-not-exist.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "data/confessionwall.db", cfg.DBPath)
	assert.Equal(t, 500, cfg.MaxContentLength)
	assert.False(t, cfg.StrictLikes)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/cw")
	t.Setenv("MAX_CONTENT_LENGTH", "280")
	t.Setenv("STRICT_LIKES", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example,")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "postgres://localhost/cw", cfg.DatabaseURL)
	assert.Equal(t, 280, cfg.MaxContentLength)
	assert.True(t, cfg.StrictLikes)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already set, even to "",
	// so unset the ones the file provides.
	os.Unsetenv("PORT")
	os.Unsetenv("STRICT_LIKES")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nSTRICT_LIKES=1\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("STRICT_LIKES")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.True(t, cfg.StrictLikes)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "non-numeric port", env: map[string]string{"PORT": "http"}},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "zero max length", env: map[string]string{"MAX_CONTENT_LENGTH": "0"}},
		{name: "bad bool", env: map[string]string{"STRICT_LIKES": "sometimes"}},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "unknown driver", env: map[string]string{"DB_DRIVER": "mysql"}},
		{name: "postgres without url", env: map[string]string{"DB_DRIVER": "postgres"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(missingEnvFile(t))
			assert.Error(t, err)
		})
	}
}
