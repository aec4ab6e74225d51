package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/pkg/session"
)

// fakeAuthService lets tests script auth outcomes
type fakeAuthService struct {
	session   *domain.AuthSession
	loginErr  error
	logoutErr error
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.AuthSession, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func (f *fakeAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*domain.AuthSession, error) {
	return f.session, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	return f.logoutErr
}

func (f *fakeAuthService) GetCurrentUser(ctx context.Context, token string) (*domain.Profile, error) {
	if f.session == nil {
		return nil, errors.New("no session")
	}
	return f.session.User, nil
}

func (f *fakeAuthService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*domain.Profile, error) {
	return f.session.User, nil
}

func testSession() *domain.AuthSession {
	return &domain.AuthSession{
		User:      &domain.Profile{ID: "user-1", Email: "op@example.test", UserType: domain.UserTypeOperator},
		Token:     "token-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func newAuthStore(t *testing.T, svc *fakeAuthService) (*AuthStore, session.Store) {
	t.Helper()
	persist := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	return NewAuthStore(svc, persist), persist
}

func TestAuthStoreLogin(t *testing.T) {
	store, persist := newAuthStore(t, &fakeAuthService{session: testSession()})
	ctx := context.Background()

	require.True(t, store.Login(ctx, "op@example.test", "password123"))
	assert.True(t, store.IsAuthenticated())
	assert.Empty(t, store.Err())
	require.NotNil(t, store.CurrentUser())
	assert.Equal(t, "user-1", store.CurrentUser().ID)

	// The session was persisted for the next start
	persisted, err := persist.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", persisted.Token)
}

func TestAuthStoreLogin_FailureRecordsError(t *testing.T) {
	store, _ := newAuthStore(t, &fakeAuthService{loginErr: errors.New("invalid email or password")})

	assert.False(t, store.Login(context.Background(), "op@example.test", "wrong"))
	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, "invalid email or password", store.Err())
	assert.False(t, store.Loading())
}

func TestAuthStoreLogout_ClearsLocalOnRemoteFailure(t *testing.T) {
	svc := &fakeAuthService{session: testSession(), logoutErr: errors.New("backend unreachable")}
	store, persist := newAuthStore(t, svc)
	ctx := context.Background()

	require.True(t, store.Login(ctx, "op@example.test", "password123"))
	require.True(t, store.IsAuthenticated())

	// Remote logout fails, but the local and persisted session still go away
	store.Logout(ctx)
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.Session())

	_, err := persist.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestAuthStoreRestore(t *testing.T) {
	store, persist := newAuthStore(t, &fakeAuthService{})
	ctx := context.Background()

	// Nothing persisted yet
	assert.False(t, store.Restore(ctx))
	assert.Nil(t, store.Session())

	require.NoError(t, persist.Save(ctx, testSession()))
	assert.True(t, store.Restore(ctx))
	require.NotNil(t, store.Session())
	assert.Equal(t, "token-1", store.Session().Token)
}

func TestAuthStoreRestore_ExpiredSessionCleared(t *testing.T) {
	store, persist := newAuthStore(t, &fakeAuthService{})
	ctx := context.Background()

	expired := testSession()
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, persist.Save(ctx, expired))

	assert.False(t, store.Restore(ctx))
	assert.Nil(t, store.Session())

	// The stale record was dropped from disk too
	_, err := persist.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestAuthStoreSignup(t *testing.T) {
	store, _ := newAuthStore(t, &fakeAuthService{session: testSession()})

	ok := store.Signup(context.Background(), &dto.SignupRequest{
		Email:       "op@example.test",
		Password:    "password123",
		UserType:    domain.UserTypeOperator,
		CompanyName: "Example Cinema",
	})
	require.True(t, ok)
	assert.True(t, store.IsAuthenticated())
}
