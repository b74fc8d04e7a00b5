package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/oaskit/oaspath/codec"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Output defaults.
	OutputFormat codec.Format
	Indent       int

	// Input limits.
	MaxInputSize int64

	// Cache settings.
	CacheEnabled bool
	CacheMaxSize int
	CacheFileTTL time.Duration
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASPATH_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		OutputFormat: envFormat("OASPATH_OUTPUT_FORMAT", codec.FormatYAML),
		Indent:       envInt("OASPATH_INDENT", 2),
		MaxInputSize: envInt64("OASPATH_MAX_INPUT_SIZE", 1<<20),
		CacheEnabled: envBool("OASPATH_CACHE_ENABLED", true),
		CacheMaxSize: envInt("OASPATH_CACHE_MAX_SIZE", 10),
		CacheFileTTL: envDuration("OASPATH_CACHE_FILE_TTL", 15*time.Minute),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envFormat(key string, fallback codec.Format) codec.Format {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f := codec.ParseFormat(v)
	if f == codec.FormatUnknown {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", string(fallback))
		return fallback
	}
	return f
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
