package service

import (
	"context"
	"errors"
	"sort"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/repository"
)

// SponsorService errors
var (
	ErrSponsorNotFound = errors.New("sponsor not found")
)

// SponsorService manages sponsor discovery, bookmarks and sponsor profiles
type SponsorService interface {
	// SearchSponsors returns a scored, score-ordered page of sponsors
	SearchSponsors(ctx context.Context, query *dto.SearchSponsorsQuery) (*dto.SearchSponsorsResponse, error)
	GetSponsor(ctx context.Context, id string) (*domain.SponsorProfile, error)
	GetSponsorByProfileID(ctx context.Context, profileID string) (*domain.SponsorProfile, error)
	UpdateSponsorProfile(ctx context.Context, sponsorID string, req *dto.UpdateSponsorProfileRequest) (*domain.SponsorProfile, error)
	// SaveSponsor bookmarks a sponsor; repeat saves return the existing record
	SaveSponsor(ctx context.Context, operatorID, sponsorID string) (*domain.SavedSponsor, error)
	UnsaveSponsor(ctx context.Context, operatorID, sponsorID string) error
	// GetSavedSponsors resolves the operator's bookmarks to scored profiles
	GetSavedSponsors(ctx context.Context, operatorID string) ([]*domain.SponsorProfile, error)
	GetBusinessTypes(ctx context.Context) ([]string, error)
}

// sponsorServiceBase carries the operations both backends share
type sponsorServiceBase struct {
	repo   repository.SponsorRepository
	jitter Jitter
}

// GetSponsor retrieves a scored sponsor profile by ID
func (s *sponsorServiceBase) GetSponsor(ctx context.Context, id string) (*domain.SponsorProfile, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSponsorNotFound
	}
	enrichSponsor(sp, s.jitter)
	return sp, nil
}

// GetSponsorByProfileID retrieves the sponsor profile owned by a profile
func (s *sponsorServiceBase) GetSponsorByProfileID(ctx context.Context, profileID string) (*domain.SponsorProfile, error) {
	sp, err := s.repo.GetByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSponsorNotFound
	}
	enrichSponsor(sp, s.jitter)
	return sp, nil
}

// UpdateSponsorProfile applies non-nil fields to the sponsor profile
func (s *sponsorServiceBase) UpdateSponsorProfile(ctx context.Context, sponsorID string, req *dto.UpdateSponsorProfileRequest) (*domain.SponsorProfile, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	sp, err := s.repo.GetByID(ctx, sponsorID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSponsorNotFound
	}

	if req.BusinessType != nil {
		sp.BusinessType = *req.BusinessType
	}
	if req.Description != nil {
		sp.Description = *req.Description
	}
	if req.TargetAudience != nil {
		sp.TargetAudience = *req.TargetAudience
	}
	if req.BudgetTier != nil {
		sp.BudgetTier = domain.BudgetTier(*req.BudgetTier)
	}
	if req.BudgetMin != nil {
		sp.BudgetMin = *req.BudgetMin
	}
	if req.BudgetMax != nil {
		sp.BudgetMax = *req.BudgetMax
	}
	if req.PreferredEventTypes != nil {
		sp.PreferredEventTypes = *req.PreferredEventTypes
	}
	if req.AssetsAvailable != nil {
		sp.AssetsAvailable = *req.AssetsAvailable
	}
	if req.CoverImageURL != nil {
		sp.CoverImageURL = *req.CoverImageURL
	}
	if req.MediaKitURL != nil {
		sp.MediaKitURL = *req.MediaKitURL
	}

	if err := s.repo.Update(ctx, sp); err != nil {
		return nil, err
	}
	enrichSponsor(sp, s.jitter)
	return sp, nil
}

// SaveSponsor bookmarks a sponsor for an operator
func (s *sponsorServiceBase) SaveSponsor(ctx context.Context, operatorID, sponsorID string) (*domain.SavedSponsor, error) {
	sp, err := s.repo.GetByID(ctx, sponsorID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSponsorNotFound
	}
	return s.repo.SaveSponsor(ctx, operatorID, sponsorID)
}

// UnsaveSponsor removes a bookmark
func (s *sponsorServiceBase) UnsaveSponsor(ctx context.Context, operatorID, sponsorID string) error {
	return s.repo.UnsaveSponsor(ctx, operatorID, sponsorID)
}

// GetSavedSponsors resolves bookmarks to scored sponsor profiles. Bookmarks
// pointing at removed sponsors are skipped.
func (s *sponsorServiceBase) GetSavedSponsors(ctx context.Context, operatorID string) ([]*domain.SponsorProfile, error) {
	saved, err := s.repo.ListSaved(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	sponsors := make([]*domain.SponsorProfile, 0, len(saved))
	for _, sv := range saved {
		sp, err := s.repo.GetByID(ctx, sv.SponsorID)
		if err != nil {
			return nil, err
		}
		if sp == nil {
			continue
		}
		enrichSponsor(sp, s.jitter)
		sponsors = append(sponsors, sp)
	}
	return sponsors, nil
}

// GetBusinessTypes returns the distinct business types, sorted
func (s *sponsorServiceBase) GetBusinessTypes(ctx context.Context) ([]string, error) {
	return s.repo.ListBusinessTypes(ctx)
}

func toSponsorFilter(query *dto.SearchSponsorsQuery) repository.SponsorFilter {
	tiers := make([]domain.BudgetTier, 0, len(query.BudgetTiers))
	for _, t := range query.BudgetTiers {
		tiers = append(tiers, domain.BudgetTier(t))
	}
	return repository.SponsorFilter{
		Query:         query.Query,
		BusinessTypes: query.BusinessTypes,
		BudgetTiers:   tiers,
	}
}

func sortByScoreDesc(sponsors []*domain.SponsorProfile) {
	sort.SliceStable(sponsors, func(i, j int) bool {
		return sponsors[i].MatchScore > sponsors[j].MatchScore
	})
}

// memorySponsorService searches over the full fixture set: every candidate
// is scored before pagination, so the total and the pages reflect the score
// filter.
type memorySponsorService struct {
	sponsorServiceBase
	memRepo *repository.MemorySponsorRepository
}

// NewMemorySponsorService creates a SponsorService over the fixture-backed
// repository
func NewMemorySponsorService(repo *repository.MemorySponsorRepository, jitter Jitter) SponsorService {
	if jitter == nil {
		jitter = DefaultJitter
	}
	return &memorySponsorService{
		sponsorServiceBase: sponsorServiceBase{repo: repo, jitter: jitter},
		memRepo:            repo,
	}
}

// SearchSponsors scores all matching sponsors, filters on the score, then
// paginates the remainder
func (s *memorySponsorService) SearchSponsors(ctx context.Context, query *dto.SearchSponsorsQuery) (*dto.SearchSponsorsResponse, error) {
	query.SetDefaults()

	sponsors, err := s.memRepo.ListFiltered(ctx, toSponsorFilter(query))
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.SponsorProfile, 0, len(sponsors))
	for _, sp := range sponsors {
		enrichSponsor(sp, s.jitter)
		if sp.MatchScore >= query.MinMatchScore {
			matched = append(matched, sp)
		}
	}
	sortByScoreDesc(matched)

	total := len(matched)
	offset := (query.Page - 1) * query.PageSize
	page := []*domain.SponsorProfile{}
	if offset < total {
		end := offset + query.PageSize
		if end > total {
			end = total
		}
		page = matched[offset:end]
	}

	return &dto.SearchSponsorsResponse{
		Data:     page,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

// postgresSponsorService searches with database pagination. Scores are
// computed on the fetched page and the score filter is applied afterwards,
// so a page can come back short while the total still counts every row that
// matched the storage filters.
type postgresSponsorService struct {
	sponsorServiceBase
	pgRepo *repository.PostgresSponsorRepository
}

// NewPostgresSponsorService creates a SponsorService over the
// database-backed repository
func NewPostgresSponsorService(repo *repository.PostgresSponsorRepository, jitter Jitter) SponsorService {
	if jitter == nil {
		jitter = DefaultJitter
	}
	return &postgresSponsorService{
		sponsorServiceBase: sponsorServiceBase{repo: repo, jitter: jitter},
		pgRepo:             repo,
	}
}

// SearchSponsors pages at the database, then scores and filters the page
func (s *postgresSponsorService) SearchSponsors(ctx context.Context, query *dto.SearchSponsorsQuery) (*dto.SearchSponsorsResponse, error) {
	query.SetDefaults()
	filter := toSponsorFilter(query)

	total, err := s.pgRepo.CountFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	offset := (query.Page - 1) * query.PageSize
	sponsors, err := s.pgRepo.SearchPage(ctx, filter, query.PageSize, offset)
	if err != nil {
		return nil, err
	}

	page := make([]*domain.SponsorProfile, 0, len(sponsors))
	for _, sp := range sponsors {
		enrichSponsor(sp, s.jitter)
		if sp.MatchScore >= query.MinMatchScore {
			page = append(page, sp)
		}
	}
	sortByScoreDesc(page)

	return &dto.SearchSponsorsResponse{
		Data:     page,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
