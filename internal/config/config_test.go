package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8081
cors_origins = ["http://localhost:3000"]

[database]
host = "localhost"
user = "booking"
password = "secret"
dbname = "place_booking"
auto_migrate = true

[logs]
level = "debug"

[metrics]
enabled = true

[auth]
jwt_secret = "file-secret"

[booking]
timezone = "Europe/Moscow"

[sweeper]
enabled = true
schedule = "@every 30s"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileWithDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "@every 30s", cfg.Sweeper.Schedule)
	assert.Equal(t, 30, cfg.Sweeper.Timeout)
	assert.False(t, cfg.Audit.Enabled)

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())

	assert.Equal(t, "host=localhost port=5432 user=booking password=secret dbname=place_booking sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PLACEBOOKING_JWT_SECRET", "env-secret")
	t.Setenv("PLACEBOOKING_DB_HOST", "db.internal")
	t.Setenv("PLACEBOOKING_DB_PORT", "6432")
	t.Setenv("PLACEBOOKING_HTTP_PORT", "9090")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "booking", cfg.Database.User)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing secret",
			content: "[database]\nhost = \"h\"\ndbname = \"d\"\n",
			want:    "auth.jwt_secret is required",
		},
		{
			name:    "unknown timezone",
			content: "[database]\nhost = \"h\"\ndbname = \"d\"\n[auth]\njwt_secret = \"s\"\n[booking]\ntimezone = \"Mars/Olympus\"\n",
			want:    "booking.timezone",
		},
		{
			name:    "audit without url",
			content: "[database]\nhost = \"h\"\ndbname = \"d\"\n[auth]\njwt_secret = \"s\"\n[audit]\nenabled = true\n",
			want:    "audit.url is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
