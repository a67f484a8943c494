package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
	"github.com/photographerlagbe/marketplace-api/internal/core/ports"
)

// UserService covers self-service identity reads and edits. Email, role and
// password never change through this path.
type UserService struct {
	users    ports.UserRepository
	profiles ports.PhotographerRepository
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, profiles ports.PhotographerRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, profiles: profiles, logger: logger}
}

func (s *UserService) GetMe(ctx context.Context, userID string) (*ports.MeView, error) {
	uid, err := parseOwnerID(userID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	view := &ports.MeView{User: user}
	if user.Role == domain.RolePhotographer {
		profile, err := s.profiles.FindByOwner(ctx, uid)
		switch {
		case err == nil:
			view.Photographer = profile
		case errors.Is(err, domain.ErrProfileNotFound):
			// photographer without a profile yet
		default:
			return nil, err
		}
	}
	return view, nil
}

func (s *UserService) UpdateMe(ctx context.Context, userID string, upd ports.UserUpdate) (*domain.User, error) {
	uid, err := parseOwnerID(userID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateUserUpdate(upd.Name, upd.Phone); err != nil {
		return nil, err
	}

	user, err := s.users.Update(ctx, uid, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("user profile updated")
	return user, nil
}
