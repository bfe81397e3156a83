package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetUnknownUserIsIdle(t *testing.T) {
	store := NewMemoryStore()

	sess, err := store.Get(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, StateIdle, sess.State)
}

func TestMemoryStore_PutGetClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Put(ctx, 42, &Session{
		State:  StateAwaitingTitle,
		FileID: "file-abc",
	})
	require.NoError(t, err)

	sess, err := store.Get(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, StateAwaitingTitle, sess.State)
	require.Equal(t, "file-abc", sess.FileID)

	// Sessions are isolated per user
	other, err := store.Get(ctx, 43)
	require.NoError(t, err)
	require.Equal(t, StateIdle, other.State)

	require.NoError(t, store.Clear(ctx, 42))
	sess, err = store.Get(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, StateIdle, sess.State)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, 42, &Session{State: StateAwaitingContent}))

	sess, err := store.Get(ctx, 42)
	require.NoError(t, err)
	sess.Title = "mutated"

	again, err := store.Get(ctx, 42)
	require.NoError(t, err)
	require.Empty(t, again.Title, "mutating a returned session must not leak into the store")
}

func TestMemoryStore_ExpiredSessionIsIdle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, 42, &Session{State: StateAwaitingContent}))

	store.mu.Lock()
	entry := store.sessions[42]
	entry.deadline = time.Now().Add(-time.Minute)
	store.sessions[42] = entry
	store.mu.Unlock()

	sess, err := store.Get(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, StateIdle, sess.State)
}
