// Package store holds client-side state containers. Each store owns one
// slice of UI state (an entity or collection plus loading and error flags),
// guards it with a mutex, and converts failures into recorded error strings
// and sentinel return values instead of propagating them.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/service"
	"github.com/The-boat-boat/sponsorreel/pkg/logger"
	"github.com/The-boat-boat/sponsorreel/pkg/session"
)

// AuthStore holds the current session and keeps it durable across restarts
type AuthStore struct {
	authService service.AuthService
	persist     session.Store

	mu      sync.RWMutex
	session *domain.AuthSession
	loading bool
	errMsg  string
}

// NewAuthStore creates a new AuthStore
func NewAuthStore(authService service.AuthService, persist session.Store) *AuthStore {
	return &AuthStore{authService: authService, persist: persist}
}

func (s *AuthStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *AuthStore) fail(err error) bool {
	s.mu.Lock()
	s.loading = false
	s.errMsg = err.Error()
	s.mu.Unlock()
	return false
}

// Restore loads a previously persisted session. Expired or missing sessions
// leave the store signed out; restore failures are not errors.
func (s *AuthStore) Restore(ctx context.Context) bool {
	persisted, err := s.persist.Load(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			logger.WarnCtx(ctx, "failed to restore session", zap.Error(err))
		}
		return false
	}
	if time.Now().After(persisted.ExpiresAt) {
		_ = s.persist.Clear(ctx)
		return false
	}

	s.mu.Lock()
	s.session = persisted
	s.mu.Unlock()
	return true
}

// Login authenticates and records the session. Returns false on failure
// with the cause in Err.
func (s *AuthStore) Login(ctx context.Context, email, password string) bool {
	s.setLoading()

	sess, err := s.authService.Login(ctx, &dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return s.fail(err)
	}
	if err := s.persist.Save(ctx, sess); err != nil {
		logger.WarnCtx(ctx, "failed to persist session", zap.Error(err))
	}

	s.mu.Lock()
	s.session = sess
	s.loading = false
	s.mu.Unlock()
	return true
}

// Signup registers an account and records the fresh session
func (s *AuthStore) Signup(ctx context.Context, req *dto.SignupRequest) bool {
	s.setLoading()

	sess, err := s.authService.Signup(ctx, req)
	if err != nil {
		return s.fail(err)
	}
	if err := s.persist.Save(ctx, sess); err != nil {
		logger.WarnCtx(ctx, "failed to persist session", zap.Error(err))
	}

	s.mu.Lock()
	s.session = sess
	s.loading = false
	s.mu.Unlock()
	return true
}

// Logout ends the session. The local session is dropped no matter what the
// backend says: a failed remote logout must never leave the UI signed in.
func (s *AuthStore) Logout(ctx context.Context) {
	s.mu.RLock()
	sess := s.session
	s.mu.RUnlock()

	if sess != nil {
		if err := s.authService.Logout(ctx, sess.Token); err != nil {
			logger.WarnCtx(ctx, "remote logout failed, clearing local session anyway", zap.Error(err))
		}
	}
	if err := s.persist.Clear(ctx); err != nil {
		logger.WarnCtx(ctx, "failed to clear persisted session", zap.Error(err))
	}

	s.mu.Lock()
	s.session = nil
	s.errMsg = ""
	s.mu.Unlock()
}

// Session returns the current session, nil when signed out
func (s *AuthStore) Session() *domain.AuthSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// CurrentUser returns the signed-in profile, nil when signed out
func (s *AuthStore) CurrentUser() *domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	return s.session.User
}

// IsAuthenticated reports whether a live session exists
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil && time.Now().Before(s.session.ExpiresAt)
}

// Loading reports whether an auth action is in flight
func (s *AuthStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded error message, "" when clear
func (s *AuthStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}
