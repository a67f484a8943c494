package service

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
	"github.com/photographerlagbe/marketplace-api/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// sortFields maps the public sort names onto stored field paths. Anything
// outside the whitelist falls back to the default.
var sortFields = map[string]string{
	"created_at":    "created_at",
	"hourly_rate":   "hourly_rate",
	"experience":    "experience",
	"rating":        "rating.average",
	"business_name": "business_name",
}

// DirectoryService serves the public photographer directory: conjunctive
// filters, whitelisted sorting and stable pagination. Only active profiles
// are ever visible.
type DirectoryService struct {
	profiles ports.PhotographerRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewDirectoryService(profiles ports.PhotographerRepository, users ports.UserRepository, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{profiles: profiles, users: users, logger: logger}
}

func (s *DirectoryService) List(ctx context.Context, q ports.DirectoryQuery) (*ports.DirectoryPage, error) {
	filter := buildFilter(q)

	items, total, err := s.profiles.List(ctx, filter)
	if err != nil {
		// Listing is idempotent, so one retry on a transient timeout is safe.
		if !errors.Is(err, domain.ErrTimeout) {
			return nil, err
		}
		s.logger.Warn().Msg("directory query timed out, retrying once")
		items, total, err = s.profiles.List(ctx, filter)
		if err != nil {
			return nil, err
		}
	}

	page := &ports.DirectoryPage{
		Items:      make([]ports.DirectoryItem, 0, len(items)),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.PageSize))),
	}

	owners := s.ownersFor(ctx, items)
	for _, p := range items {
		item := ports.DirectoryItem{Photographer: p}
		if owner, ok := owners[p.UserID]; ok {
			item.Owner = ownerInfo(owner)
		}
		page.Items = append(page.Items, item)
	}
	return page, nil
}

// GetByID treats a malformed id, a missing record and an inactive record as
// the same NotFound, so deactivation state is not observable from outside.
func (s *DirectoryService) GetByID(ctx context.Context, id string) (*ports.DirectoryItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	profile, err := s.profiles.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !profile.IsActive {
		return nil, domain.ErrProfileNotFound
	}

	item := &ports.DirectoryItem{Photographer: profile}
	if owner, err := s.users.FindByID(ctx, profile.UserID); err == nil {
		item.Owner = ownerInfo(owner)
	}
	return item, nil
}

// ownersFor batch-fetches the owning users for one result page.
func (s *DirectoryService) ownersFor(ctx context.Context, items []*domain.Photographer) map[primitive.ObjectID]*domain.User {
	if len(items) == 0 {
		return nil
	}
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.UserID)
	}
	owners, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn().Err(err).Msg("directory owner join failed")
		return nil
	}
	return owners
}

func buildFilter(q ports.DirectoryQuery) ports.DirectoryFilter {
	f := ports.DirectoryFilter{
		City:    q.City,
		MinRate: q.MinRate,
		MaxRate: q.MaxRate,
		Page:    q.Page,
	}
	// An unknown specialization simply matches nothing; the enum is not a
	// validation gate on reads.
	f.Specialization = domain.Specialization(q.Specialization)

	f.SortBy = sortFields["created_at"]
	if field, ok := sortFields[q.SortBy]; ok {
		f.SortBy = field
	}
	f.SortAsc = q.SortOrder == "asc"

	if f.Page < 1 {
		f.Page = 1
	}
	f.PageSize = q.PageSize
	if f.PageSize <= 0 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	return f
}
