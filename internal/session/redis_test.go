package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisPersistence_SaveLoadClear(t *testing.T) {
	mr, client := setupTestRedis(t)
	p := NewRedisBackend(client, "t:", time.Hour).For("abc")
	ctx := context.Background()

	_, _, err := p.Load(ctx)
	assert.ErrorIs(t, err, ErrNotPersisted)

	require.NoError(t, p.Save(ctx, "tok", []byte(`{"_id":"u1"}`)))
	assert.True(t, mr.Exists("t:abc:rmm_token"))
	assert.True(t, mr.Exists("t:abc:rmm_user"))
	assert.Equal(t, time.Hour, mr.TTL("t:abc:rmm_user"))

	tok, usr, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
	assert.JSONEq(t, `{"_id":"u1"}`, string(usr))

	require.NoError(t, p.Clear(ctx))
	assert.False(t, mr.Exists("t:abc:rmm_token"))
	assert.False(t, mr.Exists("t:abc:rmm_user"))
	require.NoError(t, p.Clear(ctx))
}

func TestRedisPersistence_TouchSlidesTTL(t *testing.T) {
	mr, client := setupTestRedis(t)
	p := NewRedisBackend(client, "", time.Hour).For("abc")
	ctx := context.Background()

	require.NoError(t, p.Save(ctx, "tok", []byte(`{"_id":"u1"}`)))
	mr.FastForward(50 * time.Minute)
	require.NoError(t, p.Touch(ctx))
	assert.Equal(t, time.Hour, mr.TTL("rmm:sess:abc:rmm_token"))
	assert.Equal(t, time.Hour, mr.TTL("rmm:sess:abc:rmm_user"))

	mr.FastForward(50 * time.Minute)
	_, _, err := p.Load(ctx)
	assert.NoError(t, err, "a refreshed session outlives the original TTL")

	require.NoError(t, p.Clear(ctx))
	require.NoError(t, p.Touch(ctx))
	assert.False(t, mr.Exists("rmm:sess:abc:rmm_token"))
}

func TestRedisPersistence_HalfEntryIsNotPersisted(t *testing.T) {
	mr, client := setupTestRedis(t)
	require.NoError(t, mr.Set("rmm:sess:abc:rmm_token", "tok"))
	p := NewRedisBackend(client, "", time.Hour).For("abc")

	_, _, err := p.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotPersisted)
}

func TestStore_RehydratesFromRedisWithCorruptUser(t *testing.T) {
	mr, client := setupTestRedis(t)
	require.NoError(t, mr.Set("rmm:sess:abc:rmm_token", "tok"))
	require.NoError(t, mr.Set("rmm:sess:abc:rmm_user", "{{{"))

	s := NewStore(NewRedisBackend(client, "", time.Hour).For("abc"), nil)
	assert.False(t, s.Rehydrate(context.Background()))
	assert.False(t, s.IsLoggedIn())

	got, err := mr.Get("rmm:sess:abc:rmm_user")
	require.NoError(t, err)
	assert.Equal(t, "{{{", got)
}

func TestStore_RedisDown_LoginStillWorks(t *testing.T) {
	mr, client := setupTestRedis(t)
	mr.Close()

	s := NewStore(NewRedisBackend(client, "", time.Hour).For("abc"), nil)
	require.NoError(t, s.Login(context.Background(), alice, "tok"))
	assert.True(t, s.IsLoggedIn())
	s.Logout(context.Background())
	assert.False(t, s.IsLoggedIn())
}
