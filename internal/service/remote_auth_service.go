package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/repository"
	"github.com/The-boat-boat/sponsorreel/pkg/logger"
)

const revokedTokenPrefix = "auth:revoked:"

// remoteAuthService is the database-backed auth backend. Identity lives in
// the credentials table and the profile in its own row; a profile insert
// failing after the credential insert leaves an orphaned identity, which is
// tolerated (the login surfaces ErrProfileNotFound until repaired).
type remoteAuthService struct {
	credRepo    repository.CredentialRepository
	profileRepo repository.ProfileRepository
	redisClient *redis.Client // optional token revocation, nil disables it
	jwtSecret   string
	tokenTTL    time.Duration
	issuer      string
}

// NewRemoteAuthService creates an AuthService over the database-backed
// repositories. redisClient may be nil, in which case logout only takes
// effect client-side.
func NewRemoteAuthService(
	credRepo repository.CredentialRepository,
	profileRepo repository.ProfileRepository,
	redisClient *redis.Client,
	jwtSecret string,
	tokenTTL time.Duration,
	issuer string,
) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = domain.SessionTTL
	}
	return &remoteAuthService{
		credRepo:    credRepo,
		profileRepo: profileRepo,
		redisClient: redisClient,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		issuer:      issuer,
	}
}

func (s *remoteAuthService) issueSession(profile *domain.Profile) (*domain.AuthSession, error) {
	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"user_id":   profile.ID,
		"email":     profile.Email,
		"user_type": string(profile.UserType),
		"iss":       s.issuer,
		"iat":       time.Now().Unix(),
		"exp":       expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}
	return &domain.AuthSession{
		User:      profile,
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// Login authenticates against the credentials table
func (s *remoteAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.AuthSession, error) {
	cred, err := s.credRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	profile, err := s.profileRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return s.issueSession(profile)
}

// Signup creates the credential first, then the linked profile
func (s *remoteAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*domain.AuthSession, error) {
	existing, err := s.credRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cred := &repository.Credential{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := s.credRepo.Create(ctx, cred); err != nil {
		return nil, err
	}

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
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		// The credential row stays behind; no compensation
		logger.ErrorCtx(ctx, "profile creation failed after credential insert",
			zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	return s.issueSession(profile)
}

// Logout revokes the token when revocation storage is configured
func (s *remoteAuthService) Logout(ctx context.Context, token string) error {
	if s.redisClient == nil {
		return nil
	}
	claims, err := s.parseToken(token)
	if err != nil {
		return nil // already unusable
	}
	ttl := s.tokenTTL
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ttl = time.Until(exp.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return s.redisClient.Set(ctx, revokedTokenPrefix+token, "1", ttl).Err()
}

// GetCurrentUser validates the token and loads the profile
func (s *remoteAuthService) GetCurrentUser(ctx context.Context, token string) (*domain.Profile, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, ErrInvalidSession
	}
	if s.redisClient != nil {
		revoked, err := s.redisClient.Exists(ctx, revokedTokenPrefix+token).Result()
		if err == nil && revoked > 0 {
			return nil, ErrInvalidSession
		}
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, ErrInvalidSession
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// UpdateProfile applies non-nil fields and persists the result
func (s *remoteAuthService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*domain.Profile, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	applyProfileUpdate(profile, req)
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *remoteAuthService) parseToken(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
