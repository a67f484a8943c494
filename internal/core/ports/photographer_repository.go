package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
)

// ProfileUpdate is a partial photographer update. Nil fields are untouched,
// never nulled. The repository writes all supplied fields in one atomic $set.
type ProfileUpdate struct {
	BusinessName    *string
	Bio             *string
	Specializations *[]domain.Specialization
	Experience      *int
	HourlyRate      *float64
	Location        *domain.Location
	Services        *[]domain.ServiceOffering
	Availability    *domain.Availability
	Equipment       *[]string
	Certifications  *[]domain.Certification
	SocialMedia     *domain.SocialMedia
}

// DirectoryFilter carries the public listing query. All filters are
// conjunctive; the repository always adds is_active=true on top.
type DirectoryFilter struct {
	City           string                // case-insensitive substring match
	Specialization domain.Specialization // exact enum membership
	MinRate        *float64
	MaxRate        *float64
	SortBy         string // whitelisted bson field, e.g. "created_at"
	SortAsc        bool
	Page           int // 1-based
	PageSize       int
}

// PhotographerRepository defines persistence for photographer profiles.
// Portfolio edits use single-document atomic array operators so concurrent
// structural changes cannot corrupt the sequence.
type PhotographerRepository interface {
	// Create inserts a profile. Returns domain.ErrProfileExists when the
	// owner already has one (unique index on the owning-user reference).
	Create(ctx context.Context, p *domain.Photographer) (*domain.Photographer, error)
	// FindByOwner returns domain.ErrProfileNotFound when absent.
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) (*domain.Photographer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Photographer, error)
	// Update applies the supplied fields and bumps updated_at, returning the
	// post-update document. domain.ErrProfileNotFound when absent.
	Update(ctx context.Context, ownerID primitive.ObjectID, upd ProfileUpdate) (*domain.Photographer, error)
	// PushPortfolioItem inserts at the head of the portfolio sequence.
	PushPortfolioItem(ctx context.Context, ownerID primitive.ObjectID, item domain.PortfolioItem) error
	// PullPortfolioItem removes by item identity. A missing item yields
	// domain.ErrPortfolioItemNotFound so duplicate deletes are detectable.
	PullPortfolioItem(ctx context.Context, ownerID, itemID primitive.ObjectID) error
	// List returns one page of active profiles matching filter plus the total
	// count of the same predicate.
	List(ctx context.Context, filter DirectoryFilter) ([]*domain.Photographer, int64, error)
}
