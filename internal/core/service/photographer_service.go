package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
	"github.com/photographerlagbe/marketplace-api/internal/core/ports"
)

// PhotographerService implements the role-scoped profile operations: create,
// fetch, partial update and portfolio append/remove.
type PhotographerService struct {
	profiles ports.PhotographerRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewPhotographerService(profiles ports.PhotographerRepository, users ports.UserRepository, logger zerolog.Logger) *PhotographerService {
	return &PhotographerService{profiles: profiles, users: users, logger: logger}
}

func (s *PhotographerService) CreateProfile(ctx context.Context, ownerID string, input ports.CreateProfileInput) (*ports.ProfileView, error) {
	oid, err := parseOwnerID(ownerID)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	// A profile may only hang off a photographer-role user.
	if owner.Role != domain.RolePhotographer {
		return nil, domain.ErrForbidden
	}

	// Friendly pre-check; the unique index on the owning-user reference
	// decides concurrent create races.
	if _, err := s.profiles.FindByOwner(ctx, oid); err == nil {
		return nil, domain.ErrProfileExists
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	availability := input.Availability
	if availability == nil {
		availability = domain.DefaultAvailability()
	}

	now := time.Now().UTC()
	profile := &domain.Photographer{
		UserID:          oid,
		BusinessName:    input.BusinessName,
		Bio:             input.Bio,
		Specializations: input.Specializations,
		Experience:      input.Experience,
		HourlyRate:      input.HourlyRate,
		Location:        input.Location,
		Portfolio:       []domain.PortfolioItem{},
		Services:        input.Services,
		Availability:    availability,
		Equipment:       input.Equipment,
		Certifications:  input.Certifications,
		SocialMedia:     input.SocialMedia,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	created, err := s.profiles.Create(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", ownerID).Str("profile_id", created.ID.Hex()).Msg("photographer profile created")
	return s.withOwner(ctx, created), nil
}

func (s *PhotographerService) GetOwnProfile(ctx context.Context, ownerID string) (*ports.ProfileView, error) {
	oid, err := parseOwnerID(ownerID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByOwner(ctx, oid)
	if err != nil {
		return nil, err
	}
	return s.withOwner(ctx, profile), nil
}

// UpdateProfile applies only the supplied fields. The merged document runs
// through the same validation contract as create, and a rejected update
// leaves the stored profile untouched.
func (s *PhotographerService) UpdateProfile(ctx context.Context, ownerID string, upd ports.ProfileUpdate) (*ports.ProfileView, error) {
	oid, err := parseOwnerID(ownerID)
	if err != nil {
		return nil, err
	}

	current, err := s.profiles.FindByOwner(ctx, oid)
	if err != nil {
		return nil, err
	}

	merged := *current
	applyProfileUpdate(&merged, upd)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.profiles.Update(ctx, oid, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", ownerID).Msg("photographer profile updated")
	return s.withOwner(ctx, updated), nil
}

// AppendPortfolioItem inserts at the head of the portfolio sequence, so
// listings show the most recent work first.
func (s *PhotographerService) AppendPortfolioItem(ctx context.Context, ownerID string, item domain.PortfolioItem) (*domain.PortfolioItem, error) {
	oid, err := parseOwnerID(ownerID)
	if err != nil {
		return nil, err
	}

	if item.Title == "" {
		item.Title = "Untitled"
	}
	if err := domain.ValidatePortfolioItem(&item); err != nil {
		return nil, err
	}

	item.ID = primitive.NewObjectID()
	item.UploadedAt = time.Now().UTC()

	if err := s.profiles.PushPortfolioItem(ctx, oid, item); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", ownerID).Str("item_id", item.ID.Hex()).Msg("portfolio item added")
	return &item, nil
}

// RemovePortfolioItem removes by identity. Removing an id that is not there
// reports ErrPortfolioItemNotFound so duplicate-delete races are visible to
// the caller.
func (s *PhotographerService) RemovePortfolioItem(ctx context.Context, ownerID, itemID string) error {
	oid, err := parseOwnerID(ownerID)
	if err != nil {
		return err
	}

	iid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return domain.ErrPortfolioItemNotFound
	}

	if err := s.profiles.PullPortfolioItem(ctx, oid, iid); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", ownerID).Str("item_id", itemID).Msg("portfolio item removed")
	return nil
}

// withOwner joins a profile with the owner's public identity fields.
func (s *PhotographerService) withOwner(ctx context.Context, p *domain.Photographer) *ports.ProfileView {
	view := &ports.ProfileView{Photographer: p}
	owner, err := s.users.FindByID(ctx, p.UserID)
	if err != nil {
		s.logger.Warn().Str("user_id", p.UserID.Hex()).Err(err).Msg("profile owner lookup failed")
		return view
	}
	view.Owner = ownerInfo(owner)
	return view
}

func ownerInfo(u *domain.User) ports.OwnerInfo {
	return ports.OwnerInfo{
		ID:             u.ID.Hex(),
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		ProfilePicture: u.ProfilePicture,
	}
}

// parseOwnerID turns the hex user id carried in verified claims back into an
// ObjectID. Garbage means the token subject was never one of ours.
func parseOwnerID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidToken
	}
	return oid, nil
}

func applyProfileUpdate(p *domain.Photographer, upd ports.ProfileUpdate) {
	if upd.BusinessName != nil {
		p.BusinessName = *upd.BusinessName
	}
	if upd.Bio != nil {
		p.Bio = *upd.Bio
	}
	if upd.Specializations != nil {
		p.Specializations = *upd.Specializations
	}
	if upd.Experience != nil {
		p.Experience = *upd.Experience
	}
	if upd.HourlyRate != nil {
		p.HourlyRate = *upd.HourlyRate
	}
	if upd.Location != nil {
		p.Location = *upd.Location
	}
	if upd.Services != nil {
		p.Services = *upd.Services
	}
	if upd.Availability != nil {
		p.Availability = *upd.Availability
	}
	if upd.Equipment != nil {
		p.Equipment = *upd.Equipment
	}
	if upd.Certifications != nil {
		p.Certifications = *upd.Certifications
	}
	if upd.SocialMedia != nil {
		p.SocialMedia = *upd.SocialMedia
	}
}
