package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaks
const uniqueViolation = "23505"

// sponsorColumns selects sponsor profile fields joined with the owning profile
const sponsorColumns = `s.id, s.profile_id, s.business_type, COALESCE(s.description, '') as description,
	s.target_audience, s.budget_tier, COALESCE(s.budget_min, 0) as budget_min,
	COALESCE(s.budget_max, 0) as budget_max, s.preferred_event_types, s.assets_available,
	COALESCE(s.cover_image_url, '') as cover_image_url, s.is_verified,
	COALESCE(s.media_kit_url, '') as media_kit_url,
	p.id, p.user_type, p.email, COALESCE(p.company_name, '') as company_name,
	COALESCE(p.company_logo_url, '') as company_logo_url, COALESCE(p.phone, '') as phone,
	p.subscription_status, p.subscription_tier, p.created_at, p.updated_at`

// PostgresSponsorRepository implements SponsorRepository using PostgreSQL
type PostgresSponsorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSponsorRepository creates a new PostgresSponsorRepository
func NewPostgresSponsorRepository(pool *pgxpool.Pool) *PostgresSponsorRepository {
	return &PostgresSponsorRepository{pool: pool}
}

func scanSponsor(row pgx.Row) (*domain.SponsorProfile, error) {
	sp := &domain.SponsorProfile{}
	p := &domain.Profile{}
	err := row.Scan(
		&sp.ID,
		&sp.ProfileID,
		&sp.BusinessType,
		&sp.Description,
		&sp.TargetAudience,
		&sp.BudgetTier,
		&sp.BudgetMin,
		&sp.BudgetMax,
		&sp.PreferredEventTypes,
		&sp.AssetsAvailable,
		&sp.CoverImageURL,
		&sp.IsVerified,
		&sp.MediaKitURL,
		&p.ID,
		&p.UserType,
		&p.Email,
		&p.CompanyName,
		&p.CompanyLogoURL,
		&p.Phone,
		&p.SubscriptionStatus,
		&p.SubscriptionTier,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	sp.Profile = p
	return sp, nil
}

// sponsorWhere builds the WHERE clause for a sponsor filter
func sponsorWhere(filter SponsorFilter) (string, []interface{}) {
	where := `WHERE p.user_type = $1`
	args := []interface{}{domain.UserTypeSponsor}
	argIndex := 2

	if filter.Query != "" {
		where += fmt.Sprintf(` AND (p.company_name ILIKE $%d OR s.description ILIKE $%d OR s.business_type ILIKE $%d)`,
			argIndex, argIndex, argIndex)
		args = append(args, "%"+filter.Query+"%")
		argIndex++
	}
	if len(filter.BusinessTypes) > 0 {
		where += fmt.Sprintf(` AND s.business_type = ANY($%d)`, argIndex)
		args = append(args, filter.BusinessTypes)
		argIndex++
	}
	if len(filter.BudgetTiers) > 0 {
		tiers := make([]string, 0, len(filter.BudgetTiers))
		for _, t := range filter.BudgetTiers {
			tiers = append(tiers, string(t))
		}
		where += fmt.Sprintf(` AND s.budget_tier = ANY($%d)`, argIndex)
		args = append(args, tiers)
		argIndex++
	}
	return where, args
}

// CountFiltered counts sponsors matching the filter. The count runs before
// any score filtering, so a page can be shorter than the total implies.
func (r *PostgresSponsorRepository) CountFiltered(ctx context.Context, filter SponsorFilter) (int, error) {
	where, args := sponsorWhere(filter)
	query := `SELECT COUNT(*) FROM sponsor_profiles s JOIN profiles p ON p.id = s.profile_id ` + where
	var total int
	err := r.pool.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

// SearchPage returns one page of sponsors matching the filter, profile
// joined, collapsed by sponsor id
func (r *PostgresSponsorRepository) SearchPage(ctx context.Context, filter SponsorFilter, limit, offset int) ([]*domain.SponsorProfile, error) {
	where, args := sponsorWhere(filter)
	query := `SELECT ` + sponsorColumns + ` FROM sponsor_profiles s
		JOIN profiles p ON p.id = s.profile_id ` + where +
		fmt.Sprintf(` ORDER BY p.company_name ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	sponsors := make([]*domain.SponsorProfile, 0)
	for rows.Next() {
		sp, err := scanSponsor(rows)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[sp.ID]; dup {
			continue
		}
		seen[sp.ID] = struct{}{}
		sponsors = append(sponsors, sp)
	}
	return sponsors, rows.Err()
}

// GetByID retrieves a sponsor profile by ID
func (r *PostgresSponsorRepository) GetByID(ctx context.Context, id string) (*domain.SponsorProfile, error) {
	query := `SELECT ` + sponsorColumns + ` FROM sponsor_profiles s
		JOIN profiles p ON p.id = s.profile_id WHERE s.id = $1`
	return scanSponsor(r.pool.QueryRow(ctx, query, id))
}

// GetByProfileID retrieves the sponsor profile linked to a profile ID
func (r *PostgresSponsorRepository) GetByProfileID(ctx context.Context, profileID string) (*domain.SponsorProfile, error) {
	query := `SELECT ` + sponsorColumns + ` FROM sponsor_profiles s
		JOIN profiles p ON p.id = s.profile_id WHERE s.profile_id = $1`
	return scanSponsor(r.pool.QueryRow(ctx, query, profileID))
}

// Update updates a sponsor profile
func (r *PostgresSponsorRepository) Update(ctx context.Context, sponsor *domain.SponsorProfile) error {
	query := `
		UPDATE sponsor_profiles
		SET business_type = $2, description = $3, target_audience = $4, budget_tier = $5,
			budget_min = $6, budget_max = $7, preferred_event_types = $8, assets_available = $9,
			cover_image_url = $10, is_verified = $11, media_kit_url = $12
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		sponsor.ID,
		sponsor.BusinessType,
		sponsor.Description,
		sponsor.TargetAudience,
		sponsor.BudgetTier,
		sponsor.BudgetMin,
		sponsor.BudgetMax,
		sponsor.PreferredEventTypes,
		sponsor.AssetsAvailable,
		sponsor.CoverImageURL,
		sponsor.IsVerified,
		sponsor.MediaKitURL,
	)
	return err
}

// ListBusinessTypes returns the distinct business types, sorted
func (r *PostgresSponsorRepository) ListBusinessTypes(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT business_type FROM sponsor_profiles ORDER BY business_type ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// SaveSponsor bookmarks a sponsor for an operator. A concurrent or repeated
// save trips the (operator_id, sponsor_id) unique constraint; the existing
// row is fetched and returned instead.
func (r *PostgresSponsorRepository) SaveSponsor(ctx context.Context, operatorID, sponsorID string) (*domain.SavedSponsor, error) {
	saved := &domain.SavedSponsor{
		ID:         uuid.New().String(),
		OperatorID: operatorID,
		SponsorID:  sponsorID,
		CreatedAt:  time.Now(),
	}
	query := `
		INSERT INTO saved_sponsors (id, operator_id, sponsor_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, saved.ID, saved.OperatorID, saved.SponsorID, saved.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return r.getSaved(ctx, operatorID, sponsorID)
		}
		return nil, err
	}
	return saved, nil
}

func (r *PostgresSponsorRepository) getSaved(ctx context.Context, operatorID, sponsorID string) (*domain.SavedSponsor, error) {
	query := `SELECT id, operator_id, sponsor_id, created_at FROM saved_sponsors
		WHERE operator_id = $1 AND sponsor_id = $2`
	saved := &domain.SavedSponsor{}
	err := r.pool.QueryRow(ctx, query, operatorID, sponsorID).Scan(
		&saved.ID, &saved.OperatorID, &saved.SponsorID, &saved.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return saved, nil
}

// UnsaveSponsor removes a bookmark; a missing pair is a no-op
func (r *PostgresSponsorRepository) UnsaveSponsor(ctx context.Context, operatorID, sponsorID string) error {
	query := `DELETE FROM saved_sponsors WHERE operator_id = $1 AND sponsor_id = $2`
	_, err := r.pool.Exec(ctx, query, operatorID, sponsorID)
	return err
}

// ListSaved returns the operator's bookmarks, newest first
func (r *PostgresSponsorRepository) ListSaved(ctx context.Context, operatorID string) ([]*domain.SavedSponsor, error) {
	query := `SELECT id, operator_id, sponsor_id, created_at FROM saved_sponsors
		WHERE operator_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, operatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	saved := make([]*domain.SavedSponsor, 0)
	for rows.Next() {
		sv := &domain.SavedSponsor{}
		if err := rows.Scan(&sv.ID, &sv.OperatorID, &sv.SponsorID, &sv.CreatedAt); err != nil {
			return nil, err
		}
		saved = append(saved, sv)
	}
	return saved, rows.Err()
}
