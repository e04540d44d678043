package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkenzhe/lavka/internal/storage"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(NewKVRepository(storage.NewMemory()))
}

func TestCurrent_AbsentMeansLoggedOut(t *testing.T) {
	m := setupManager(t)

	current, err := m.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestStartAndCurrent(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	require.NoError(t, m.Start(ctx, 42, "a@example.com", "Aruzhan D"))

	current, err := m.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, int64(42), current.UserID)
	assert.Equal(t, "a@example.com", current.Email)
	assert.Equal(t, "Aruzhan D", current.FullName)
	assert.WithinDuration(t, time.Now(), current.LoginTime, time.Minute)
}

func TestStart_ReplacesPreviousSession(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	require.NoError(t, m.Start(ctx, 1, "a@example.com", "First"))
	require.NoError(t, m.Start(ctx, 2, "b@example.com", "Second"))

	current, err := m.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, int64(2), current.UserID)
}

func TestEnd_IsIdempotent(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	require.NoError(t, m.Start(ctx, 1, "a@example.com", "First"))
	require.NoError(t, m.End(ctx))
	require.NoError(t, m.End(ctx))

	current, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestResync(t *testing.T) {
	ctx := context.Background()

	t.Run("refreshes matching session and keeps login time", func(t *testing.T) {
		m := setupManager(t)
		require.NoError(t, m.Start(ctx, 1, "a@example.com", "Old Name"))
		before, err := m.Current(ctx)
		require.NoError(t, err)

		require.NoError(t, m.Resync(ctx, 1, "a@example.com", "New Name"))

		current, err := m.Current(ctx)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, "New Name", current.FullName)
		assert.Equal(t, before.LoginTime, current.LoginTime)
	})

	t.Run("no-op without a session", func(t *testing.T) {
		m := setupManager(t)
		require.NoError(t, m.Resync(ctx, 1, "a@example.com", "New Name"))

		current, err := m.Current(ctx)
		require.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("no-op for a different user", func(t *testing.T) {
		m := setupManager(t)
		require.NoError(t, m.Start(ctx, 1, "a@example.com", "Owner"))
		require.NoError(t, m.Resync(ctx, 2, "b@example.com", "Stranger"))

		current, err := m.Current(ctx)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, "Owner", current.FullName)
	})
}
