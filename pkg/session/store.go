package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"rlc-hub-be/pkg/authtoken"
	"rlc-hub-be/pkg/clientstate"
)

// Phase is the session state machine's current state.
type Phase string

const (
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseAuthenticating  Phase = "authenticating"
	PhaseAuthenticated   Phase = "authenticated"
)

// Logout reasons surfaced to observers.
const (
	ReasonManual       = "manual"
	ReasonTokenExpired = "token_expired"
)

// DefaultCheckInterval is how often the background watcher re-validates the
// held credential.
const DefaultCheckInterval = 60 * time.Second

// Snapshot is the observable session state handed to change listeners.
type Snapshot struct {
	Phase    Phase
	Identity *authtoken.Identity
	Expired  bool
	Reason   string
}

// ExchangeFunc performs the credential exchange against the token endpoint.
type ExchangeFunc func(ctx context.Context) (*authtoken.Identity, error)

// Store holds the single active identity, persisted under one fixed storage
// key. All mutations run under one lock; observable side effects are the
// storage slot and the change callback, nothing else.
type Store struct {
	mu       sync.Mutex
	storage  clientstate.Storage
	now      func() time.Time
	onChange func(Snapshot)

	phase    Phase
	identity *authtoken.Identity
	expired  bool
}

type Option func(*Store)

// WithClock injects the time source, making expiry decisions deterministic
// in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithOnChange registers a listener invoked after every state transition.
func WithOnChange(fn func(Snapshot)) Option {
	return func(s *Store) { s.onChange = fn }
}

func NewStore(storage clientstate.Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		now:     time.Now,
		phase:   PhaseUnauthenticated,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore loads the persisted identity at application start. A stale
// identity is purged before the store settles in Unauthenticated.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.storage.Get(ctx, clientstate.CurrentUserKey)
	if err != nil {
		if !errors.Is(err, clientstate.ErrNotFound) {
			log.Printf("[session] restore read failed: %v", err)
		}
		return
	}

	var id authtoken.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		log.Printf("[session] restore decode failed: %v", err)
		s.purgeIdentityLocked(ctx)
		return
	}

	if !authtoken.IdentityUsable(&id, s.now()) {
		s.purgeIdentityLocked(ctx)
		s.expired = true
		s.notifyLocked(ReasonTokenExpired)
		return
	}

	s.identity = &id
	s.phase = PhaseAuthenticated
	s.notifyLocked("")
}

// Login runs the exchange and, on success, persists the identity and moves
// to Authenticated. On failure the store returns to Unauthenticated and the
// exchange error is surfaced.
func (s *Store) Login(ctx context.Context, exchange ExchangeFunc) error {
	s.mu.Lock()
	s.phase = PhaseAuthenticating
	s.notifyLocked("")
	s.mu.Unlock()

	id, err := exchange(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.phase = PhaseUnauthenticated
		s.identity = nil
		s.notifyLocked("")
		return err
	}

	raw, merr := json.Marshal(id)
	if merr == nil {
		if werr := s.storage.Set(ctx, clientstate.CurrentUserKey, raw); werr != nil {
			log.Printf("[session] persist identity failed: %v", werr)
		}
	}

	s.identity = id
	s.phase = PhaseAuthenticated
	s.expired = false
	s.notifyLocked("")
	return nil
}

// Current returns a copy of the held identity, or nil.
func (s *Store) Current() *authtoken.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// Valid reports whether a usable identity is held right now.
func (s *Store) Valid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseAuthenticated && authtoken.IdentityUsable(s.identity, s.now())
}

// Phase returns the current state machine phase.
func (s *Store) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Expired reports the sticky session-expired flag for the UI.
func (s *Store) Expired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expired
}

// Namespace derives the feature-state namespace for the active identity.
func (s *Store) Namespace() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return clientstate.GuestNamespace
	}
	return clientstate.NamespaceFor(s.identity.Email)
}

// Logout purges the identity slot and moves to Unauthenticated. With
// clearMemory it also removes the departing identity's feature state and the
// guest fallback slots. Repeat calls are no-ops beyond the storage deletes,
// so racing 401 handlers observe a single transition.
func (s *Store) Logout(ctx context.Context, reason string, clearMemory bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	departing := ""
	if s.identity != nil {
		departing = s.identity.Email
	}

	s.purgeIdentityLocked(ctx)

	if clearMemory {
		namespaces := []string{clientstate.GuestNamespace}
		if departing != "" {
			namespaces = append(namespaces, clientstate.NamespaceFor(departing))
		}
		for _, ns := range namespaces {
			for _, prefix := range []string{clientstate.CoachStatePrefix, clientstate.ReportStatePrefix} {
				if err := s.storage.Delete(ctx, clientstate.FeatureKey(prefix, ns)); err != nil {
					log.Printf("[session] clear %s failed: %v", clientstate.FeatureKey(prefix, ns), err)
				}
			}
		}
	}

	alreadyOut := s.phase == PhaseUnauthenticated && s.identity == nil
	s.identity = nil
	s.phase = PhaseUnauthenticated
	if reason == ReasonTokenExpired {
		s.expired = true
	}
	if !alreadyOut {
		s.notifyLocked(reason)
	}
}

// Watch re-validates the credential on a fixed interval until the context is
// cancelled. Expiry triggers a forced logout that keeps feature state intact
// so the next login can restore it.
func (s *Store) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.CheckNow(ctx)
			}
		}
	}()
}

// CheckNow runs one validity check, the same one the watcher runs.
func (s *Store) CheckNow(ctx context.Context) {
	s.mu.Lock()
	authenticated := s.phase == PhaseAuthenticated
	usable := authtoken.IdentityUsable(s.identity, s.now())
	s.mu.Unlock()

	if authenticated && !usable {
		s.Logout(ctx, ReasonTokenExpired, false)
	}
}

func (s *Store) purgeIdentityLocked(ctx context.Context) {
	if err := s.storage.Delete(ctx, clientstate.CurrentUserKey); err != nil {
		log.Printf("[session] purge identity failed: %v", err)
	}
}

func (s *Store) notifyLocked(reason string) {
	if s.onChange == nil {
		return
	}
	var id *authtoken.Identity
	if s.identity != nil {
		copied := *s.identity
		id = &copied
	}
	s.onChange(Snapshot{
		Phase:    s.phase,
		Identity: id,
		Expired:  s.expired,
		Reason:   reason,
	})
}
