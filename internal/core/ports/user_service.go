package ports

import (
	"context"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
)

// MeView is a user's own identity plus their photographer profile when one
// exists.
type MeView struct {
	User         *domain.User
	Photographer *domain.Photographer // nil for clients and profile-less photographers
}

// UserService covers self-service identity operations. Email, role and
// password are not editable through this path.
type UserService interface {
	GetMe(ctx context.Context, userID string) (*MeView, error)
	UpdateMe(ctx context.Context, userID string, upd UserUpdate) (*domain.User, error)
}
