package session

import (
	"context"
	"errors"
	"sync"
)

// Fixed entry names. Both are written together and removed together.
const (
	TokenKey = "rmm_token"
	UserKey  = "rmm_user"
)

// ErrNotPersisted is returned by Load when either entry is missing.
var ErrNotPersisted = errors.New("session: nothing persisted")

// Persistence is the durable key-value store behind one browser's session.
// It is a cache of the in-memory Store and is read only by Rehydrate.
type Persistence interface {
	Save(ctx context.Context, token string, user []byte) error
	Load(ctx context.Context) (token string, user []byte, err error)
	Clear(ctx context.Context) error
	// Touch extends the lifetime of persisted entries, if they expire.
	Touch(ctx context.Context) error
}

// Backend hands out the Persistence of one session id.
type Backend interface {
	For(sid string) Persistence
}

// MemoryBackend keeps persisted entries in process memory. It is used when
// Redis is unavailable and in tests. Entries live until Clear or until the
// Manager sweeps the idle session.
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string]map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]map[string][]byte)}
}

func (b *MemoryBackend) For(sid string) Persistence { return &memoryPersistence{b: b, sid: sid} }

// Put writes a raw entry. Tests use it to plant corrupted records.
func (b *MemoryBackend) Put(sid, key string, val []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.data[sid]
	if !ok {
		m = make(map[string][]byte)
		b.data[sid] = m
	}
	m[key] = append([]byte(nil), val...)
}

// Entry returns a raw entry and whether it exists.
func (b *MemoryBackend) Entry(sid, key string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.data[sid][key]
	return v, ok
}

// Forget drops every entry of sid.
func (b *MemoryBackend) Forget(sid string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, sid)
}

type memoryPersistence struct {
	b   *MemoryBackend
	sid string
}

func (p *memoryPersistence) Save(_ context.Context, token string, user []byte) error {
	p.b.mu.Lock()
	defer p.b.mu.Unlock()
	p.b.data[p.sid] = map[string][]byte{
		TokenKey: []byte(token),
		UserKey:  append([]byte(nil), user...),
	}
	return nil
}

func (p *memoryPersistence) Load(_ context.Context) (string, []byte, error) {
	p.b.mu.Lock()
	defer p.b.mu.Unlock()
	m := p.b.data[p.sid]
	tok, okT := m[TokenKey]
	usr, okU := m[UserKey]
	if !okT || !okU {
		return "", nil, ErrNotPersisted
	}
	return string(tok), append([]byte(nil), usr...), nil
}

func (p *memoryPersistence) Clear(_ context.Context) error {
	p.b.Forget(p.sid)
	return nil
}

func (p *memoryPersistence) Touch(context.Context) error { return nil }
