package config

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig locates the Redis server behind session persistence, the form
// rate limiter and the anonymous page cache.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	TLS         bool
	PingTimeout time.Duration
}

// LoadRedisConfig reads REDIS_HOST and REDIS_PORT, or the REDIS_ADDR
// shorthand (host/port win when both are set), plus REDIS_PASSWORD,
// REDIS_DB, REDIS_TLS and REDIS_PING_TIMEOUT.
func LoadRedisConfig() RedisConfig {
	addr := envStr("REDIS_ADDR", "localhost:6379")
	host, port := envStr("REDIS_HOST", ""), envStr("REDIS_PORT", "")
	if host != "" && port != "" {
		addr = host + ":" + port
	}
	return RedisConfig{
		Addr:        addr,
		Password:    envStr("REDIS_PASSWORD", ""),
		DB:          envInt("REDIS_DB", 0),
		TLS:         envBool("REDIS_TLS", false),
		PingTimeout: envDur("REDIS_PING_TIMEOUT", 2*time.Second),
	}
}

func (c RedisConfig) options() *redis.Options {
	opts := &redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}
	if c.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return opts
}

// NewRedisClient connects and pings the server. It returns nil when Redis
// cannot be reached; callers then degrade: sessions stay in process memory,
// rate limiting and caching are switched off.
func NewRedisClient(c RedisConfig) *redis.Client {
	client := redis.NewClient(c.options())
	ctx, cancel := context.WithTimeout(context.Background(), c.PingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}
