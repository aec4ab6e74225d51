package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// profileColumns defines the columns to select for profiles
const profileColumns = `id, user_type, email, COALESCE(company_name, '') as company_name,
	COALESCE(company_logo_url, '') as company_logo_url, COALESCE(phone, '') as phone,
	address, COALESCE(stripe_customer_id, '') as stripe_customer_id,
	subscription_status, subscription_tier, created_at, updated_at`

// PostgresProfileRepository implements ProfileRepository using PostgreSQL
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(pool *pgxpool.Pool) *PostgresProfileRepository {
	return &PostgresProfileRepository{pool: pool}
}

// scanProfile scans a row into a Profile struct. Address is stored as JSONB.
func scanProfile(row pgx.Row) (*domain.Profile, error) {
	profile := &domain.Profile{}
	var addressJSON []byte
	err := row.Scan(
		&profile.ID,
		&profile.UserType,
		&profile.Email,
		&profile.CompanyName,
		&profile.CompanyLogoURL,
		&profile.Phone,
		&addressJSON,
		&profile.StripeCustomerID,
		&profile.SubscriptionStatus,
		&profile.SubscriptionTier,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(addressJSON) > 0 {
		addr := &domain.Address{}
		if err := json.Unmarshal(addressJSON, addr); err != nil {
			return nil, err
		}
		profile.Address = addr
	}
	return profile, nil
}

func addressParam(addr *domain.Address) (interface{}, error) {
	if addr == nil {
		return nil, nil
	}
	return json.Marshal(addr)
}

// Create creates a new profile
func (r *PostgresProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, user_type, email, company_name, company_logo_url, phone,
			address, stripe_customer_id, subscription_status, subscription_tier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	addr, err := addressParam(profile.Address)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		profile.ID,
		profile.UserType,
		profile.Email,
		profile.CompanyName,
		profile.CompanyLogoURL,
		profile.Phone,
		addr,
		profile.StripeCustomerID,
		profile.SubscriptionStatus,
		profile.SubscriptionTier,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

// GetByID retrieves a profile by ID
func (r *PostgresProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a profile by email
func (r *PostgresProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`
	return scanProfile(r.pool.QueryRow(ctx, query, email))
}

// Update updates a profile
func (r *PostgresProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET company_name = $2, company_logo_url = $3, phone = $4, address = $5,
			stripe_customer_id = $6, subscription_status = $7, subscription_tier = $8, updated_at = $9
		WHERE id = $1
	`
	profile.UpdatedAt = time.Now()
	addr, err := addressParam(profile.Address)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		profile.ID,
		profile.CompanyName,
		profile.CompanyLogoURL,
		profile.Phone,
		addr,
		profile.StripeCustomerID,
		profile.SubscriptionStatus,
		profile.SubscriptionTier,
		profile.UpdatedAt,
	)
	return err
}

// PostgresCredentialRepository implements CredentialRepository using PostgreSQL.
// Credentials live in their own table, separate from profiles.
type PostgresCredentialRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCredentialRepository creates a new PostgresCredentialRepository
func NewPostgresCredentialRepository(pool *pgxpool.Pool) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{pool: pool}
}

// Create creates a new credential
func (r *PostgresCredentialRepository) Create(ctx context.Context, cred *Credential) error {
	query := `
		INSERT INTO auth_users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, cred.ID, cred.Email, cred.PasswordHash, cred.CreatedAt)
	return err
}

// GetByEmail retrieves a credential by email
func (r *PostgresCredentialRepository) GetByEmail(ctx context.Context, email string) (*Credential, error) {
	query := `SELECT id, email, password_hash, created_at FROM auth_users WHERE email = $1`
	cred := &Credential{}
	err := r.pool.QueryRow(ctx, query, email).Scan(&cred.ID, &cred.Email, &cred.PasswordHash, &cred.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return cred, nil
}
