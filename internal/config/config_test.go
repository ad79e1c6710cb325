package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "FRONTEND", "CORS_ORIGINS", "DATABASE_URL", "LEADERBOARD_PATH", "SOUND", "SEED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, FrontendDesktop, cfg.Frontend)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "leaderboard.json", cfg.LeaderboardPath)
	assert.Nil(t, cfg.CORSOrigins)
	assert.True(t, cfg.Sound)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestLoad_OverlayAddr(t *testing.T) {
	t.Setenv("OVERLAY_ADDR", "")
	assert.Equal(t, "", Load().OverlayAddr, "set but empty disables the overlay")

	t.Setenv("OVERLAY_ADDR", "127.0.0.1:9000")
	assert.Equal(t, "127.0.0.1:9000", Load().OverlayAddr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", "hero.log")
	t.Setenv("FRONTEND", "Terminal")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DATABASE_URL", "postgres://localhost/hero")
	t.Setenv("LEADERBOARD_PATH", "scores.yaml")
	t.Setenv("SOUND", "false")
	t.Setenv("SEED", "42")

	cfg := Load()

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "hero.log", cfg.LogFile)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "postgres://localhost/hero", cfg.DatabaseURL)
	assert.Equal(t, "scores.yaml", cfg.LeaderboardPath)
	assert.False(t, cfg.Sound)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestFrontend(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"desktop", FrontendDesktop},
		{"terminal", FrontendTerminal},
		{"HEADLESS", FrontendHeadless},
		{"vr", FrontendDesktop},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, frontend(tt.in))
		})
	}
}

func TestGetEnvInt_Invalid(t *testing.T) {
	t.Setenv("SEED", "abc")
	assert.Equal(t, 7, getEnvInt("SEED", 7))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("SOUND", "0")
	assert.False(t, getEnvBool("SOUND", true))

	t.Setenv("SOUND", "maybe")
	assert.True(t, getEnvBool("SOUND", true))
}
