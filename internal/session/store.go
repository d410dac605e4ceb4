// Package session owns "who is logged in" for one browser. A Store holds the
// authenticated user and bearer token in memory, mirrors them to a
// Persistence and notifies subscribers synchronously on every change.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/register-my-marriage/internal/model"
)

// ErrIncomplete is returned by Login when the user or token is missing.
// The store is left unchanged.
var ErrIncomplete = errors.New("session: user and token are required together")

// Snapshot is a consistent copy of the session at one instant.
type Snapshot struct {
	User  *model.AuthUser
	Token string
}

// LoggedIn is true exactly when both the user and the token are present.
func (s Snapshot) LoggedIn() bool { return s.User != nil && s.Token != "" }

// Observer receives the new state after Login or Logout. It runs on the
// caller's goroutine and must not call Login or Logout on the same store.
type Observer func(Snapshot)

type Store struct {
	persist Persistence
	log     logrus.FieldLogger

	// writeMu serialises Login and Logout including their notifications so
	// observers see changes in the order they were made.
	writeMu sync.Mutex

	mu    sync.RWMutex
	user  *model.AuthUser
	token string

	obsMu     sync.Mutex
	observers map[uint64]Observer
	nextObs   uint64

	gateMu   sync.Mutex
	inflight map[string]struct{}
}

// NewStore returns a logged-out store. A nil Persistence keeps the session
// in memory only.
func NewStore(p Persistence, log logrus.FieldLogger) *Store {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Store{
		persist:   p,
		log:       log,
		observers: make(map[uint64]Observer),
		inflight:  make(map[string]struct{}),
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return Snapshot{}
	}
	u := *s.user
	return Snapshot{User: &u, Token: s.token}
}

func (s *Store) IsLoggedIn() bool { return s.Snapshot().LoggedIn() }

// Login sets user and token together, persists both and notifies observers
// before returning. A persistence failure is logged and otherwise ignored;
// the in-memory session stays authoritative.
func (s *Store) Login(ctx context.Context, user model.AuthUser, token string) error {
	token = strings.TrimSpace(token)
	if token == "" || !user.Valid() {
		return ErrIncomplete
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	u := user
	s.user, s.token = &u, token
	s.mu.Unlock()

	if s.persist != nil {
		raw, err := json.Marshal(user)
		if err == nil {
			err = s.persist.Save(ctx, token, raw)
		}
		if err != nil {
			s.log.WithError(err).Warn("session: persisting login failed")
		}
	}
	s.notify()
	return nil
}

// Logout clears the session and its persisted entries. Logging out a
// logged-out store changes nothing and notifies nobody.
func (s *Store) Logout(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	was := s.user != nil
	s.user, s.token = nil, ""
	s.mu.Unlock()

	if s.persist != nil {
		if err := s.persist.Clear(ctx); err != nil {
			s.log.WithError(err).Warn("session: clearing persisted session failed")
		}
	}
	if was {
		s.notify()
	}
}

// Rehydrate restores the session from persistence. It only populates the
// store when both entries exist and the user record is a well-formed user;
// anything else leaves the store logged out and the entries untouched. It
// reports whether a session was restored.
func (s *Store) Rehydrate(ctx context.Context) bool {
	if s.persist == nil {
		return false
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.IsLoggedIn() {
		return true
	}
	token, raw, err := s.persist.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotPersisted) {
			s.log.WithError(err).Warn("session: rehydrate failed")
		}
		return false
	}
	token = strings.TrimSpace(token)
	var u model.AuthUser
	if err := json.Unmarshal(raw, &u); err != nil || !u.Valid() || token == "" {
		s.log.Debug("session: discarding malformed persisted session")
		return false
	}
	s.mu.Lock()
	s.user, s.token = &u, token
	s.mu.Unlock()
	s.notify()
	return true
}

// Refresh extends the persisted session's lifetime while it is logged in.
func (s *Store) Refresh(ctx context.Context) {
	if s.persist == nil || !s.IsLoggedIn() {
		return
	}
	if err := s.persist.Touch(ctx); err != nil {
		s.log.WithError(err).Warn("session: refreshing persisted session failed")
	}
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.obsMu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.obsMu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.obsMu.Lock()
			delete(s.observers, id)
			s.obsMu.Unlock()
		})
	}
}

func (s *Store) notify() {
	snap := s.Snapshot()
	s.obsMu.Lock()
	fns := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.obsMu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

// BeginSubmit marks form as in flight for this browser. ok is false when a
// submission of the same form has not settled yet. Callers defer done.
func (s *Store) BeginSubmit(form string) (done func(), ok bool) {
	s.gateMu.Lock()
	defer s.gateMu.Unlock()
	if _, busy := s.inflight[form]; busy {
		return func() {}, false
	}
	s.inflight[form] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			s.gateMu.Lock()
			delete(s.inflight, form)
			s.gateMu.Unlock()
		})
	}, true
}
