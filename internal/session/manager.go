package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CookieName carries the opaque session id.
const CookieName = "rmm_sid"

// NewID returns a fresh random session id.
func NewID() string { return uuid.NewString() }

// ValidID reports whether sid looks like an id issued by NewID.
func ValidID(sid string) bool {
	_, err := uuid.Parse(sid)
	return err == nil && sid != ""
}

type entry struct {
	store    *Store
	once     sync.Once
	lastSeen time.Time
}

// Manager maps session ids to live stores. A store is rehydrated from its
// Persistence once, the first time its id is seen; later lookups reuse the
// in-memory store.
type Manager struct {
	backend Backend
	log     logrus.FieldLogger
	idle    time.Duration
	observe Observer
	now     func() time.Time

	mu     sync.Mutex
	stores map[string]*entry
}

type Option func(*Manager)

// WithIdleTimeout evicts stores not looked up for d. Evicted sessions are
// rehydrated again on their next request.
func WithIdleTimeout(d time.Duration) Option { return func(m *Manager) { m.idle = d } }

// WithObserver subscribes fn to every store the manager creates.
func WithObserver(fn Observer) Option { return func(m *Manager) { m.observe = fn } }

func NewManager(b Backend, log logrus.FieldLogger, opts ...Option) *Manager {
	if b == nil {
		b = NewMemoryBackend()
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	m := &Manager{
		backend: b,
		log:     log,
		idle:    time.Hour,
		now:     time.Now,
		stores:  make(map[string]*entry),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Get returns the store for sid, creating and rehydrating it on first use.
func (m *Manager) Get(ctx context.Context, sid string) *Store {
	m.mu.Lock()
	e, ok := m.stores[sid]
	if !ok {
		st := NewStore(m.backend.For(sid), m.log.WithField("sid", shortID(sid)))
		e = &entry{store: st}
		m.stores[sid] = e
	}
	e.lastSeen = m.now()
	m.mu.Unlock()

	e.once.Do(func() {
		e.store.Rehydrate(ctx)
		if m.observe != nil {
			e.store.Subscribe(m.observe)
		}
	})
	return e.store
}

// Len reports how many stores are live.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stores)
}

// Rotate retires oldSID and binds a fresh, logged-out store to a new id.
// The old id's persisted entries are cleared, so a browser still presenting
// it gets an empty session. Callers re-issue the cookie with the new id.
func (m *Manager) Rotate(ctx context.Context, oldSID string) (string, *Store) {
	m.mu.Lock()
	delete(m.stores, oldSID)
	m.mu.Unlock()
	if oldSID != "" {
		if err := m.backend.For(oldSID).Clear(ctx); err != nil {
			m.log.WithError(err).WithField("sid", shortID(oldSID)).Warn("session: clearing rotated id failed")
		}
	}
	sid := NewID()
	return sid, m.Get(ctx, sid)
}

// forgetter is implemented by backends whose entries do not expire on
// their own.
type forgetter interface {
	Forget(sid string)
}

// Sweep drops stores idle for longer than the idle timeout and returns how
// many were dropped. Backends without their own expiry lose the entries of
// swept sessions too.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.idle)
	f, _ := m.backend.(forgetter)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for sid, e := range m.stores {
		if e.lastSeen.Before(cutoff) {
			delete(m.stores, sid)
			if f != nil {
				f.Forget(sid)
			}
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Sweep(); n > 0 {
				m.log.WithField("evicted", n).Debug("session: swept idle stores")
			}
		}
	}
}

func shortID(sid string) string {
	if len(sid) > 8 {
		return sid[:8]
	}
	return sid
}
