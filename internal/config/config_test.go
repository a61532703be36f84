package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, int32(2), cfg.Database.MinConns)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, "1h", cfg.JWT.AccessExpiration)
	assert.Equal(t, "Asia/Jakarta", cfg.Attendance.Timezone.String())
	assert.True(t, cfg.Attendance.AutoClose)
	assert.Equal(t, time.Hour, cfg.Attendance.AutoCloseInterval)
}

func TestFromEnv_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("ATTENDANCE_AUTO_CLOSE", "false")
	t.Setenv("ATTENDANCE_AUTO_CLOSE_INTERVAL", "15m")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, time.UTC, cfg.Attendance.Timezone)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.CORSAllowedOrigins)
	assert.False(t, cfg.Attendance.AutoClose)
	assert.Equal(t, 15*time.Minute, cfg.Attendance.AutoCloseInterval)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"db port", "DB_PORT", "abc"},
		{"timezone", "APP_TIMEZONE", "Mars/Olympus"},
		{"auto close", "ATTENDANCE_AUTO_CLOSE", "maybe"},
		{"interval", "ATTENDANCE_AUTO_CLOSE_INTERVAL", "hourly"},
		{"access expiration", "JWT_ACCESS_EXPIRATION_TIME", "forever"},
		{"min above max", "DB_MIN_CONNS", "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestValidate_RequiresSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "DB_PASSWORD")

	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "JWT_SECRET_KEY")
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "hris",
		Password: "p@ss",
		Name:     "attendance",
		SSLMode:  "require",
	}}

	assert.Equal(t, "postgres://hris:p%40ss@db:5433/attendance?sslmode=require", cfg.DatabaseURL())
}
