package config // package config loads application configuration from environment variables

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Production is the APP_ENV value that switches logging to JSON and marks
// session cookies as secure by default.
const Production = "production"

// Config holds the runtime values shared by the web server and the worker.
// Concern-specific settings (Redis, cache, rate limit, backend API, queue)
// live in their own loaders next to this file.
type Config struct {
	Env           string        // application environment (development, production)
	Port          string        // HTTP port to listen on
	LogLevel      string        // logrus level name, or "silent"
	SessionTTL    time.Duration // lifetime of persisted session entries and the sid cookie
	CookieSecure  bool          // mark the sid cookie Secure
	BlogCacheTTL  time.Duration // in-process cache lifetime for live blog lists
	MetricsPath   string        // path serving prometheus metrics
	StaticVersion string        // appended to asset URLs to bust caches
}

// LoadEnv loads the given dotenv files when they exist and returns how many
// were loaded. Missing files are not an error; variables already present in
// the environment win.
func LoadEnv(files ...string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Load reads the process configuration. Every value has a default so the
// server starts with an empty environment.
func Load() Config {
	env := envStr("APP_ENV", "development")
	return Config{
		Env:           env,
		Port:          envStr("APP_PORT", "8080"),
		LogLevel:      envStr("LOG_LEVEL", "info"),
		SessionTTL:    envDur("SESSION_TTL", 30*24*time.Hour),
		CookieSecure:  envBool("SESSION_COOKIE_SECURE", env == Production),
		BlogCacheTTL:  envDur("BLOG_CACHE_TTL", 5*time.Minute),
		MetricsPath:   envStr("METRICS_PATH", "/metrics"),
		StaticVersion: envStr("STATIC_VERSION", "1"),
	}
}

// IsProduction reports whether the process runs with APP_ENV=production.
func (c Config) IsProduction() bool { return c.Env == Production }
