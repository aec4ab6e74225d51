package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// eventColumns defines the columns to select for events
const eventColumns = `id, operator_id, title, COALESCE(description, '') as description,
	COALESCE(film_title, '') as film_title, to_char(event_date, 'YYYY-MM-DD') as event_date,
	COALESCE(start_time, '') as start_time, COALESCE(end_time, '') as end_time,
	COALESCE(venue_name, '') as venue_name, COALESCE(street, '') as street,
	COALESCE(city, '') as city, COALESCE(state, '') as state, COALESCE(zip, '') as zip,
	COALESCE(expected_attendance, 0) as expected_attendance, status,
	COALESCE(cover_image_url, '') as cover_image_url, created_at, updated_at`

// tierColumns defines the columns to select for sponsorship tiers
const tierColumns = `id, event_id, name, price, benefits,
	COALESCE(max_sponsors, 0) as max_sponsors, display_order, is_active`

// demographicsColumns defines the columns to select for event demographics
const demographicsColumns = `id, event_id, age_range_min, age_range_max, interests, custom_tags`

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

func scanEventRow(row pgx.Row) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID,
		&e.OperatorID,
		&e.Title,
		&e.Description,
		&e.FilmTitle,
		&e.EventDate,
		&e.StartTime,
		&e.EndTime,
		&e.VenueName,
		&e.Address.Street,
		&e.Address.City,
		&e.Address.State,
		&e.Address.Zip,
		&e.ExpectedAttendance,
		&e.Status,
		&e.CoverImageURL,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	e.SponsorshipTiers = []domain.SponsorshipTier{}
	return e, nil
}

func scanTier(row pgx.Row) (*domain.SponsorshipTier, error) {
	t := &domain.SponsorshipTier{}
	err := row.Scan(
		&t.ID,
		&t.EventID,
		&t.Name,
		&t.Price,
		&t.Benefits,
		&t.MaxSponsors,
		&t.DisplayOrder,
		&t.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func scanDemographics(row pgx.Row) (*domain.EventDemographics, error) {
	d := &domain.EventDemographics{}
	err := row.Scan(
		&d.ID,
		&d.EventID,
		&d.AgeRangeMin,
		&d.AgeRangeMax,
		&d.Interests,
		&d.CustomTags,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if d.Interests == nil {
		d.Interests = []string{}
	}
	if d.CustomTags == nil {
		d.CustomTags = []string{}
	}
	return d, nil
}

// attachChildren loads tiers and demographics for the given events in place
func (r *PostgresEventRepository) attachChildren(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Event, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}

	tierQuery := `SELECT ` + tierColumns + ` FROM sponsorship_tiers
		WHERE event_id = ANY($1) ORDER BY display_order ASC`
	rows, err := r.pool.Query(ctx, tierQuery, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		t, err := scanTier(rows)
		if err != nil {
			return err
		}
		if e, ok := byID[t.EventID]; ok {
			e.SponsorshipTiers = append(e.SponsorshipTiers, *t)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	demoQuery := `SELECT ` + demographicsColumns + ` FROM event_demographics WHERE event_id = ANY($1)`
	demoRows, err := r.pool.Query(ctx, demoQuery, ids)
	if err != nil {
		return err
	}
	defer demoRows.Close()
	for demoRows.Next() {
		d, err := scanDemographics(demoRows)
		if err != nil {
			return err
		}
		if e, ok := byID[d.EventID]; ok {
			e.Demographics = d
		}
	}
	return demoRows.Err()
}

// Create creates a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (id, operator_id, title, description, film_title, event_date,
			start_time, end_time, venue_name, street, city, state, zip,
			expected_attendance, status, cover_image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.OperatorID,
		event.Title,
		event.Description,
		event.FilmTitle,
		event.EventDate,
		event.StartTime,
		event.EndTime,
		event.VenueName,
		event.Address.Street,
		event.Address.City,
		event.Address.State,
		event.Address.Zip,
		event.ExpectedAttendance,
		event.Status,
		event.CoverImageURL,
		event.CreatedAt,
		event.UpdatedAt,
	)
	return err
}

// GetByID retrieves an event with tiers and demographics attached
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	event, err := scanEventRow(r.pool.QueryRow(ctx, query, id))
	if err != nil || event == nil {
		return event, err
	}
	if err := r.attachChildren(ctx, []*domain.Event{event}); err != nil {
		return nil, err
	}
	return event, nil
}

// ListByOperator retrieves all events owned by an operator with children
// attached. The tier join multiplies parent rows, so results are collapsed
// by event id before children are attached.
func (r *PostgresEventRepository) ListByOperator(ctx context.Context, operatorID string) ([]*domain.Event, error) {
	query := `SELECT ` + prefixedEventColumns("e") + `
		FROM events e
		LEFT JOIN sponsorship_tiers t ON t.event_id = e.id
		WHERE e.operator_id = $1
		ORDER BY e.created_at DESC`
	rows, err := r.pool.Query(ctx, query, operatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEventRow(rows)
		if err != nil {
			return nil, err
		}
		// One row per tier; keep the first occurrence of each event
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachChildren(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

// prefixedEventColumns qualifies eventColumns with a table alias for joins
func prefixedEventColumns(alias string) string {
	return fmt.Sprintf(`%s.id, %s.operator_id, %s.title, COALESCE(%s.description, '') as description,
		COALESCE(%s.film_title, '') as film_title, to_char(%s.event_date, 'YYYY-MM-DD') as event_date,
		COALESCE(%s.start_time, '') as start_time, COALESCE(%s.end_time, '') as end_time,
		COALESCE(%s.venue_name, '') as venue_name, COALESCE(%s.street, '') as street,
		COALESCE(%s.city, '') as city, COALESCE(%s.state, '') as state, COALESCE(%s.zip, '') as zip,
		COALESCE(%s.expected_attendance, 0) as expected_attendance, %s.status,
		COALESCE(%s.cover_image_url, '') as cover_image_url, %s.created_at, %s.updated_at`,
		alias, alias, alias, alias, alias, alias, alias, alias, alias,
		alias, alias, alias, alias, alias, alias, alias, alias, alias)
}

// Browse retrieves published events matching the filter plus the total count.
// The count reflects these filters only; interest-tag filtering happens in
// the service after this query.
func (r *PostgresEventRepository) Browse(ctx context.Context, filter BrowseEventsFilter, limit, offset int) ([]*domain.Event, int, error) {
	where := `WHERE status = $1`
	args := []interface{}{domain.EventStatusPublished}
	argIndex := 2

	if filter.Query != "" {
		where += fmt.Sprintf(` AND (title ILIKE $%d OR description ILIKE $%d OR film_title ILIKE $%d)`,
			argIndex, argIndex, argIndex)
		args = append(args, "%"+filter.Query+"%")
		argIndex++
	}
	if filter.MinAttendance > 0 {
		where += fmt.Sprintf(` AND expected_attendance >= $%d`, argIndex)
		args = append(args, filter.MinAttendance)
		argIndex++
	}
	if filter.MaxAttendance > 0 {
		where += fmt.Sprintf(` AND expected_attendance <= $%d`, argIndex)
		args = append(args, filter.MaxAttendance)
		argIndex++
	}
	if filter.DateFrom != "" {
		where += fmt.Sprintf(` AND event_date >= $%d`, argIndex)
		args = append(args, filter.DateFrom)
		argIndex++
	}
	if filter.DateTo != "" {
		where += fmt.Sprintf(` AND event_date <= $%d`, argIndex)
		args = append(args, filter.DateTo)
		argIndex++
	}

	countQuery := `SELECT COUNT(*) FROM events ` + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + eventColumns + ` FROM events ` + where +
		fmt.Sprintf(` ORDER BY event_date ASC LIMIT $%d OFFSET $%d`, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEventRow(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachChildren(ctx, events); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// Update updates an event row; tiers and demographics are untouched
func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, film_title = $4, event_date = $5,
			start_time = $6, end_time = $7, venue_name = $8, street = $9, city = $10,
			state = $11, zip = $12, expected_attendance = $13, status = $14,
			cover_image_url = $15, updated_at = $16
		WHERE id = $1
	`
	event.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.FilmTitle,
		event.EventDate,
		event.StartTime,
		event.EndTime,
		event.VenueName,
		event.Address.Street,
		event.Address.City,
		event.Address.State,
		event.Address.Zip,
		event.ExpectedAttendance,
		event.Status,
		event.CoverImageURL,
		event.UpdatedAt,
	)
	return err
}

// Delete removes an event; children go with it via ON DELETE CASCADE
func (r *PostgresEventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// CreateTier creates a new sponsorship tier
func (r *PostgresEventRepository) CreateTier(ctx context.Context, tier *domain.SponsorshipTier) error {
	query := `
		INSERT INTO sponsorship_tiers (id, event_id, name, price, benefits, max_sponsors, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		tier.ID,
		tier.EventID,
		tier.Name,
		tier.Price,
		tier.Benefits,
		tier.MaxSponsors,
		tier.DisplayOrder,
		tier.IsActive,
	)
	return err
}

// GetTierByID retrieves a tier by ID
func (r *PostgresEventRepository) GetTierByID(ctx context.Context, id string) (*domain.SponsorshipTier, error) {
	query := `SELECT ` + tierColumns + ` FROM sponsorship_tiers WHERE id = $1`
	return scanTier(r.pool.QueryRow(ctx, query, id))
}

// MaxTierDisplayOrder returns the highest display_order for an event, 0 when none
func (r *PostgresEventRepository) MaxTierDisplayOrder(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COALESCE(MAX(display_order), 0) FROM sponsorship_tiers WHERE event_id = $1`
	var max int
	err := r.pool.QueryRow(ctx, query, eventID).Scan(&max)
	return max, err
}

// UpdateTier updates a sponsorship tier
func (r *PostgresEventRepository) UpdateTier(ctx context.Context, tier *domain.SponsorshipTier) error {
	query := `
		UPDATE sponsorship_tiers
		SET name = $2, price = $3, benefits = $4, max_sponsors = $5, display_order = $6, is_active = $7
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		tier.ID,
		tier.Name,
		tier.Price,
		tier.Benefits,
		tier.MaxSponsors,
		tier.DisplayOrder,
		tier.IsActive,
	)
	return err
}

// DeleteTier deletes a sponsorship tier
func (r *PostgresEventRepository) DeleteTier(ctx context.Context, id string) error {
	query := `DELETE FROM sponsorship_tiers WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// GetDemographics retrieves the demographics record for an event
func (r *PostgresEventRepository) GetDemographics(ctx context.Context, eventID string) (*domain.EventDemographics, error) {
	query := `SELECT ` + demographicsColumns + ` FROM event_demographics WHERE event_id = $1`
	return scanDemographics(r.pool.QueryRow(ctx, query, eventID))
}

// CreateDemographics creates a demographics record
func (r *PostgresEventRepository) CreateDemographics(ctx context.Context, d *domain.EventDemographics) error {
	query := `
		INSERT INTO event_demographics (id, event_id, age_range_min, age_range_max, interests, custom_tags)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		d.ID,
		d.EventID,
		d.AgeRangeMin,
		d.AgeRangeMax,
		d.Interests,
		d.CustomTags,
	)
	return err
}

// UpdateDemographics overwrites every field of the demographics record
func (r *PostgresEventRepository) UpdateDemographics(ctx context.Context, d *domain.EventDemographics) error {
	query := `
		UPDATE event_demographics
		SET age_range_min = $2, age_range_max = $3, interests = $4, custom_tags = $5
		WHERE event_id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		d.EventID,
		d.AgeRangeMin,
		d.AgeRangeMax,
		d.Interests,
		d.CustomTags,
	)
	return err
}
