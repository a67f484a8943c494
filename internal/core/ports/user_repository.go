package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
)

// UserUpdate carries the self-service editable identity fields. Nil means
// "leave untouched"; the repository only writes the supplied fields.
type UserUpdate struct {
	Name    *string
	Phone   *string
	Address *domain.Address
}

// UserRepository defines persistence for identity records.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrDuplicateEmail when the
	// normalized email is already taken (unique index backs the check).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail looks up by normalized email. Returns domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// FindByIDs returns the users that exist, keyed by id. Missing ids are
	// simply absent from the map.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*domain.User, error)
	// Update applies the supplied fields in a single write and returns the
	// updated record.
	Update(ctx context.Context, id primitive.ObjectID, upd UserUpdate) (*domain.User, error)
	// SetProfilePicture replaces the user's single picture reference.
	SetProfilePicture(ctx context.Context, id primitive.ObjectID, url string) error
}
