package config

import (
	"os"
	"strconv"
	"strings"
)

// Frontends selectable with FRONTEND.
const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

type Config struct {
	LogLevel  string
	LogFormat string
	LogFile   string

	Frontend    string
	OverlayAddr string
	CORSOrigins []string

	DatabaseURL     string
	LeaderboardPath string

	Sound bool
	Seed  int64
}

func Load() *Config {
	return &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		LogFile:         getEnv("LOG_FILE", ""),
		Frontend:        frontend(getEnv("FRONTEND", FrontendDesktop)),
		OverlayAddr:     getEnvSet("OVERLAY_ADDR", ":8080"),
		CORSOrigins:     getEnvList("CORS_ORIGINS"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		LeaderboardPath: getEnv("LEADERBOARD_PATH", "leaderboard.json"),
		Sound:           getEnvBool("SOUND", true),
		Seed:            int64(getEnvInt("SEED", 0)),
	}
}

// frontend falls back to the desktop window for unknown values.
func frontend(v string) string {
	switch v = strings.ToLower(v); v {
	case FrontendTerminal, FrontendHeadless:
		return v
	default:
		return FrontendDesktop
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvSet is getEnv, except that a key set to the empty string stays empty.
func getEnvSet(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvList splits a comma-separated value. Unset yields nil.
func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
