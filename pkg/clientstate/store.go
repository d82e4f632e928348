package clientstate

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

// State is implemented by every persisted feature state. Trivial states
// (nothing beyond the seeded default) are neither persisted nor allowed to
// overwrite a restored one.
type State interface {
	Trivial() bool
}

// NamespacedStore persists one feature's state under a key derived from the
// active identity, so switching identities swaps the visible state without
// ever merging histories. Storage failures are logged and degrade to "no
// saved state"; they never propagate to the caller.
type NamespacedStore[T State] struct {
	storage   Storage
	prefix    string
	namespace func() string
	seed      func() T
}

func NewNamespacedStore[T State](storage Storage, prefix string, namespace func() string, seed func() T) *NamespacedStore[T] {
	return &NamespacedStore[T]{
		storage:   storage,
		prefix:    prefix,
		namespace: namespace,
		seed:      seed,
	}
}

// Key returns the storage key for the current namespace.
func (s *NamespacedStore[T]) Key() string {
	return FeatureKey(s.prefix, s.namespace())
}

// Load restores the state persisted for the current namespace, or the seeded
// default when nothing usable is stored.
func (s *NamespacedStore[T]) Load(ctx context.Context) T {
	raw, err := s.storage.Get(ctx, s.Key())
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[clientstate] read %s failed: %v", s.Key(), err)
		}
		return s.seed()
	}

	state := s.seed()
	if err := json.Unmarshal(raw, &state); err != nil {
		log.Printf("[clientstate] decode %s failed: %v", s.Key(), err)
		return s.seed()
	}
	if state.Trivial() {
		return s.seed()
	}
	return state
}

// Save persists the state under the current namespace. Trivial states are
// skipped so a fresh default never clobbers previously saved work.
func (s *NamespacedStore[T]) Save(ctx context.Context, state T) {
	if state.Trivial() {
		return
	}
	raw, err := json.Marshal(state)
	if err != nil {
		log.Printf("[clientstate] encode %s failed: %v", s.Key(), err)
		return
	}
	if err := s.storage.Set(ctx, s.Key(), raw); err != nil {
		log.Printf("[clientstate] write %s failed: %v", s.Key(), err)
	}
}

// Clear removes the persisted state for the current namespace and returns a
// fresh seeded default.
func (s *NamespacedStore[T]) Clear(ctx context.Context) T {
	if err := s.storage.Delete(ctx, s.Key()); err != nil {
		log.Printf("[clientstate] delete %s failed: %v", s.Key(), err)
	}
	return s.seed()
}
