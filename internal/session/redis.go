package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend persists sessions under "<prefix><sid>:rmm_token" and
// "<prefix><sid>:rmm_user", both with the same TTL.
type RedisBackend struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisBackend(client *redis.Client, prefix string, ttl time.Duration) *RedisBackend {
	if prefix == "" {
		prefix = "rmm:sess:"
	}
	return &RedisBackend{client: client, prefix: prefix, ttl: ttl}
}

func (b *RedisBackend) For(sid string) Persistence {
	return &redisPersistence{b: b, tokenKey: b.prefix + sid + ":" + TokenKey, userKey: b.prefix + sid + ":" + UserKey}
}

type redisPersistence struct {
	b        *RedisBackend
	tokenKey string
	userKey  string
}

// Save writes both entries in one MULTI/EXEC so a reader never sees one
// without the other.
func (p *redisPersistence) Save(ctx context.Context, token string, user []byte) error {
	_, err := p.b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, p.tokenKey, token, p.b.ttl)
		pipe.Set(ctx, p.userKey, user, p.b.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (p *redisPersistence) Load(ctx context.Context) (string, []byte, error) {
	pipe := p.b.client.Pipeline()
	tokCmd := pipe.Get(ctx, p.tokenKey)
	usrCmd := pipe.Get(ctx, p.userKey)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return "", nil, fmt.Errorf("load session: %w", err)
	}
	tok, err := tokCmd.Result()
	if errors.Is(err, redis.Nil) {
		return "", nil, ErrNotPersisted
	}
	if err != nil {
		return "", nil, fmt.Errorf("load session token: %w", err)
	}
	usr, err := usrCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return "", nil, ErrNotPersisted
	}
	if err != nil {
		return "", nil, fmt.Errorf("load session user: %w", err)
	}
	return tok, usr, nil
}

func (p *redisPersistence) Clear(ctx context.Context) error {
	if err := p.b.client.Del(ctx, p.tokenKey, p.userKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Touch resets the TTL of both entries. Missing keys stay missing; a backend
// without a TTL has nothing to extend.
func (p *redisPersistence) Touch(ctx context.Context) error {
	if p.b.ttl <= 0 {
		return nil
	}
	_, err := p.b.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Expire(ctx, p.tokenKey, p.b.ttl)
		pipe.Expire(ctx, p.userKey, p.b.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}
