package clientstate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespaceFor(t *testing.T) {
	assert.Equal(t, GuestNamespace, NamespaceFor(""))
	assert.Equal(t, "ana@example.com", NamespaceFor("ana@example.com"))
}

func TestCoachStateTrivial(t *testing.T) {
	state := NewCoachState()
	assert.True(t, state.Trivial(), "seeded state is trivial")

	state = state.Append(RoleUserMessage, "how do I pick a key decision?")
	assert.False(t, state.Trivial())
}

func TestCoachStateAppendCopies(t *testing.T) {
	original := NewCoachState()
	appended := original.Append(RoleUserMessage, "question")

	assert.Len(t, original.Messages, 1)
	assert.Len(t, appended.Messages, 2)
}

func TestReportStateTrivial(t *testing.T) {
	state := NewReportState()
	assert.True(t, state.Trivial())

	state.Base.Title = "Battery chemistry gap"
	assert.False(t, state.Trivial())
}

func TestSelectedProject(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	assert.Empty(t, SelectedProject(ctx, storage))

	SetSelectedProject(ctx, storage, "d2f1a9c0")
	assert.Equal(t, "d2f1a9c0", SelectedProject(ctx, storage))

	SetSelectedProject(ctx, storage, "")
	assert.Empty(t, SelectedProject(ctx, storage))
}

func TestNamespacedStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	ns := "ana@example.com"
	store := NewCoachStore(storage, func() string { return ns })

	state := NewCoachState().Append(RoleUserMessage, "hello")
	store.Save(ctx, state)

	restored := store.Load(ctx)
	assert.Equal(t, state.ConversationId, restored.ConversationId)
	assert.Len(t, restored.Messages, 2)
}

func TestNamespacedStoreSkipsTrivialSave(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	ns := "ana@example.com"
	store := NewCoachStore(storage, func() string { return ns })

	saved := NewCoachState().Append(RoleUserMessage, "keep me")
	store.Save(ctx, saved)

	// A fresh default must not clobber previously saved work.
	store.Save(ctx, NewCoachState())

	restored := store.Load(ctx)
	assert.Equal(t, saved.ConversationId, restored.ConversationId)
	assert.Len(t, restored.Messages, 2)
}

func TestNamespacedStoreIsolatesIdentities(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	ns := "ana@example.com"
	store := NewCoachStore(storage, func() string { return ns })

	anaState := NewCoachState().Append(RoleUserMessage, "ana's draft")
	store.Save(ctx, anaState)

	// Switching identities swaps the visible state without merging.
	ns = "ben@example.com"
	benView := store.Load(ctx)
	assert.NotEqual(t, anaState.ConversationId, benView.ConversationId)
	assert.Len(t, benView.Messages, 1)

	ns = "ana@example.com"
	anaView := store.Load(ctx)
	assert.Equal(t, anaState.ConversationId, anaView.ConversationId)
}

func TestNamespacedStoreLoadBadPayloadSeeds(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewCoachStore(storage, func() string { return "ana@example.com" })

	_ = storage.Set(ctx, store.Key(), []byte("not json"))

	state := store.Load(ctx)
	assert.True(t, state.Trivial())
}

func TestNamespacedStoreClear(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewReportStore(storage, func() string { return "ana@example.com" })

	state := NewReportState()
	state.Base.Title = "draft"
	store.Save(ctx, state)

	fresh := store.Clear(ctx)
	assert.True(t, fresh.Trivial())

	_, err := storage.Get(ctx, store.Key())
	assert.ErrorIs(t, err, ErrNotFound)
}
