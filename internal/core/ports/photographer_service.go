package ports

import (
	"context"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
)

// OwnerInfo is the owner's public identity joined onto profile views.
// It never includes credentials.
type OwnerInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// ProfileView is a photographer profile joined with its owner.
type ProfileView struct {
	Photographer *domain.Photographer
	Owner        OwnerInfo
}

// CreateProfileInput carries the fields accepted at profile creation.
type CreateProfileInput struct {
	BusinessName    string
	Bio             string
	Specializations []domain.Specialization
	Experience      int
	HourlyRate      float64
	Location        domain.Location
	Services        []domain.ServiceOffering
	Availability    domain.Availability
	Equipment       []string
	Certifications  []domain.Certification
	SocialMedia     domain.SocialMedia
}

// PhotographerService implements the role-scoped profile operations.
// Owner ids are the hex user ids decoded from verified token claims.
type PhotographerService interface {
	CreateProfile(ctx context.Context, ownerID string, input CreateProfileInput) (*ProfileView, error)
	GetOwnProfile(ctx context.Context, ownerID string) (*ProfileView, error)
	UpdateProfile(ctx context.Context, ownerID string, upd ProfileUpdate) (*ProfileView, error)
	AppendPortfolioItem(ctx context.Context, ownerID string, item domain.PortfolioItem) (*domain.PortfolioItem, error)
	RemovePortfolioItem(ctx context.Context, ownerID, itemID string) error
}
