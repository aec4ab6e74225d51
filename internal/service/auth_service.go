package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/repository"
)

// AuthService errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidSession     = errors.New("session is invalid or expired")
)

// AuthService manages account identity and sessions
type AuthService interface {
	// Login authenticates with email and password
	Login(ctx context.Context, req *dto.LoginRequest) (*domain.AuthSession, error)
	// Signup creates a new account and returns a fresh session
	Signup(ctx context.Context, req *dto.SignupRequest) (*domain.AuthSession, error)
	// Logout invalidates the session token
	Logout(ctx context.Context, token string) error
	// GetCurrentUser resolves the profile behind a session token
	GetCurrentUser(ctx context.Context, token string) (*domain.Profile, error)
	// UpdateProfile applies non-nil fields to the user's profile
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*domain.Profile, error)
}

// memoryAuthService is the self-contained auth backend: users live in the
// seeded MemoryStore and tokens are opaque UUIDs with a fixed lifetime
// recorded at issue time.
type memoryAuthService struct {
	store *repository.MemoryStore

	mu       sync.RWMutex
	sessions map[string]*domain.AuthSession // keyed by token
}

// NewMemoryAuthService creates an AuthService over the fixture-backed store
func NewMemoryAuthService(store *repository.MemoryStore) AuthService {
	return &memoryAuthService{
		store:    store,
		sessions: make(map[string]*domain.AuthSession),
	}
}

func (s *memoryAuthService) issueSession(profile *domain.Profile) *domain.AuthSession {
	session := &domain.AuthSession{
		User:      profile,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(domain.SessionTTL),
	}
	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()
	return session
}

// Login authenticates against the in-memory user map
func (s *memoryAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.AuthSession, error) {
	user, ok := s.store.GetUserByEmail(req.Email)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(user.Profile), nil
}

// Signup registers a new user in the in-memory user map
func (s *memoryAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*domain.AuthSession, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &domain.Profile{
		ID:                 uuid.New().String(),
		UserType:           req.UserType,
		Email:              req.Email,
		CompanyName:        req.CompanyName,
		Phone:              req.Phone,
		SubscriptionStatus: domain.SubscriptionStatusTrial,
		SubscriptionTier:   domain.SubscriptionTierFree,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if !s.store.PutUser(&repository.MemoryUser{Profile: profile, PasswordHash: string(hash)}) {
		return nil, ErrDuplicateAccount
	}
	return s.issueSession(profile), nil
}

// Logout drops the session; unknown tokens are a no-op
func (s *memoryAuthService) Logout(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// GetCurrentUser resolves and validates the session token
func (s *memoryAuthService) GetCurrentUser(ctx context.Context, token string) (*domain.Profile, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, ErrInvalidSession
	}

	// Re-read so profile updates made after login are visible
	profile, ok := s.store.GetProfileByID(session.User.ID)
	if !ok {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// UpdateProfile applies non-nil fields and stores the result
func (s *memoryAuthService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*domain.Profile, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	profile, ok := s.store.GetProfileByID(userID)
	if !ok {
		return nil, ErrProfileNotFound
	}
	applyProfileUpdate(profile, req)
	if !s.store.ReplaceProfile(profile) {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// applyProfileUpdate copies non-nil request fields onto the profile
func applyProfileUpdate(profile *domain.Profile, req *dto.UpdateProfileRequest) {
	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.CompanyLogoURL != nil {
		profile.CompanyLogoURL = *req.CompanyLogoURL
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Address != nil {
		addr := *req.Address
		profile.Address = &addr
	}
	profile.UpdatedAt = time.Now()
}
