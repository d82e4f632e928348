package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"rlc-hub-be/pkg/authtoken"
	"rlc-hub-be/pkg/clientstate"

	"github.com/stretchr/testify/assert"
)

func tokenWithExp(exp time.Time) string {
	payload, _ := json.Marshal(map[string]any{"exp": exp.Unix()})
	return fmt.Sprintf("h.%s.s", base64.RawURLEncoding.EncodeToString(payload))
}

func freshIdentity(email string, now time.Time) *authtoken.Identity {
	return &authtoken.Identity{
		Email: email,
		Role:  authtoken.RoleUser,
		Token: tokenWithExp(now.Add(time.Hour)),
	}
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func TestLoginPersistsIdentity(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	storage := clientstate.NewMemoryStorage()
	store := NewStore(storage, WithClock(fixedClock(now)))

	id := freshIdentity("ana@example.com", now)
	err := store.Login(ctx, func(context.Context) (*authtoken.Identity, error) {
		return id, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, PhaseAuthenticated, store.Phase())
	assert.True(t, store.Valid())

	raw, err := storage.Get(ctx, clientstate.CurrentUserKey)
	assert.NoError(t, err)

	var persisted authtoken.Identity
	assert.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, "ana@example.com", persisted.Email)
}

func TestLoginFailureReturnsToUnauthenticated(t *testing.T) {
	ctx := context.Background()
	store := NewStore(clientstate.NewMemoryStorage())

	wantErr := errors.New("bad credentials")
	err := store.Login(ctx, func(context.Context) (*authtoken.Identity, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, PhaseUnauthenticated, store.Phase())
	assert.Nil(t, store.Current())
}

func TestRestoreUsableIdentity(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	storage := clientstate.NewMemoryStorage()

	raw, _ := json.Marshal(freshIdentity("ana@example.com", now))
	_ = storage.Set(ctx, clientstate.CurrentUserKey, raw)

	store := NewStore(storage, WithClock(fixedClock(now)))
	store.Restore(ctx)

	assert.Equal(t, PhaseAuthenticated, store.Phase())
	assert.False(t, store.Expired())
}

func TestRestoreStaleIdentityPurges(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	storage := clientstate.NewMemoryStorage()

	stale := &authtoken.Identity{Email: "old@example.com", Token: tokenWithExp(now.Add(-time.Hour))}
	raw, _ := json.Marshal(stale)
	_ = storage.Set(ctx, clientstate.CurrentUserKey, raw)

	store := NewStore(storage, WithClock(fixedClock(now)))
	store.Restore(ctx)

	assert.Equal(t, PhaseUnauthenticated, store.Phase())
	assert.True(t, store.Expired())

	_, err := storage.Get(ctx, clientstate.CurrentUserKey)
	assert.ErrorIs(t, err, clientstate.ErrNotFound)
}

func TestLogoutKeepsFeatureStateByDefault(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	storage := clientstate.NewMemoryStorage()
	store := NewStore(storage, WithClock(fixedClock(now)))

	_ = store.Login(ctx, func(context.Context) (*authtoken.Identity, error) {
		return freshIdentity("ana@example.com", now), nil
	})

	coachKey := clientstate.FeatureKey(clientstate.CoachStatePrefix, clientstate.NamespaceFor("ana@example.com"))
	_ = storage.Set(ctx, coachKey, []byte(`{"messages":[{"role":"user","content":"hi"}]}`))

	store.Logout(ctx, ReasonTokenExpired, false)

	assert.Equal(t, PhaseUnauthenticated, store.Phase())
	assert.True(t, store.Expired())

	// Draft survives the forced logout so the next login restores it.
	_, err := storage.Get(ctx, coachKey)
	assert.NoError(t, err)
}

func TestLogoutClearMemoryWipesFeatureState(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	storage := clientstate.NewMemoryStorage()
	store := NewStore(storage, WithClock(fixedClock(now)))

	_ = store.Login(ctx, func(context.Context) (*authtoken.Identity, error) {
		return freshIdentity("ana@example.com", now), nil
	})

	ns := clientstate.NamespaceFor("ana@example.com")
	coachKey := clientstate.FeatureKey(clientstate.CoachStatePrefix, ns)
	reportKey := clientstate.FeatureKey(clientstate.ReportStatePrefix, ns)
	guestCoachKey := clientstate.FeatureKey(clientstate.CoachStatePrefix, clientstate.GuestNamespace)
	_ = storage.Set(ctx, coachKey, []byte(`{}`))
	_ = storage.Set(ctx, reportKey, []byte(`{}`))
	_ = storage.Set(ctx, guestCoachKey, []byte(`{}`))

	store.Logout(ctx, ReasonManual, true)

	for _, key := range []string{coachKey, reportKey, guestCoachKey} {
		_, err := storage.Get(ctx, key)
		assert.ErrorIs(t, err, clientstate.ErrNotFound, key)
	}
	assert.False(t, store.Expired())
}

func TestRepeatLogoutNotifiesOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	storage := clientstate.NewMemoryStorage()

	var snapshots []Snapshot
	store := NewStore(storage,
		WithClock(fixedClock(now)),
		WithOnChange(func(s Snapshot) { snapshots = append(snapshots, s) }),
	)

	_ = store.Login(ctx, func(context.Context) (*authtoken.Identity, error) {
		return freshIdentity("ana@example.com", now), nil
	})
	snapshots = nil

	// Racing 401 handlers both force a logout; only one transition fires.
	store.Logout(ctx, ReasonTokenExpired, false)
	store.Logout(ctx, ReasonTokenExpired, false)

	assert.Len(t, snapshots, 1)
	assert.Equal(t, ReasonTokenExpired, snapshots[0].Reason)
}

func TestCheckNowForcesLogoutOnExpiry(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	storage := clientstate.NewMemoryStorage()
	store := NewStore(storage, WithClock(func() time.Time { return current }))

	_ = store.Login(ctx, func(context.Context) (*authtoken.Identity, error) {
		return freshIdentity("ana@example.com", current), nil
	})
	assert.True(t, store.Valid())

	store.CheckNow(ctx)
	assert.Equal(t, PhaseAuthenticated, store.Phase())

	current = current.Add(2 * time.Hour)
	store.CheckNow(ctx)

	assert.Equal(t, PhaseUnauthenticated, store.Phase())
	assert.True(t, store.Expired())
}

func TestNamespaceFollowsIdentity(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	store := NewStore(clientstate.NewMemoryStorage(), WithClock(fixedClock(now)))

	assert.Equal(t, clientstate.GuestNamespace, store.Namespace())

	_ = store.Login(ctx, func(context.Context) (*authtoken.Identity, error) {
		return freshIdentity("ana@example.com", now), nil
	})
	assert.Equal(t, "ana@example.com", store.Namespace())

	store.Logout(ctx, ReasonManual, false)
	assert.Equal(t, clientstate.GuestNamespace, store.Namespace())
}
