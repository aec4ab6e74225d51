package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

func TestFileStore(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	sess := &domain.AuthSession{
		User:      &domain.Profile{ID: "user-1", Email: "op@example.test", UserType: domain.UserTypeOperator},
		Token:     "token-1",
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
	}
	require.NoError(t, store.Save(ctx, sess))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", loaded.Token)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "user-1", loaded.User.ID)
	assert.Equal(t, domain.UserTypeOperator, loaded.User.UserType)

	// Save replaces the previous session
	sess.Token = "token-2"
	require.NoError(t, store.Save(ctx, sess))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", loaded.Token)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	// Clearing an already empty store is a no-op
	assert.NoError(t, store.Clear(ctx))
}
