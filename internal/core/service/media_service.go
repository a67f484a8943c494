package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
	"github.com/photographerlagbe/marketplace-api/internal/core/ports"
)

// MaxUploadBytes is the fixed ceiling for a single media payload.
const MaxUploadBytes = 5 << 20 // 5 MiB

// allowedImageTypes maps accepted content types, detected from the payload's
// leading bytes rather than the client-supplied extension or MIME header, to
// the object key extension used in the blob store.
var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// MediaService validates uploaded media and attaches the stored reference to
// the owner's profile. Portfolio uploads append; profile pictures replace.
type MediaService struct {
	store         ports.MediaStore
	photographers ports.PhotographerService
	users         ports.UserRepository
	logger        zerolog.Logger
}

func NewMediaService(store ports.MediaStore, photographers ports.PhotographerService, users ports.UserRepository, logger zerolog.Logger) *MediaService {
	return &MediaService{store: store, photographers: photographers, users: users, logger: logger}
}

func (s *MediaService) UploadWork(ctx context.Context, ownerID string, input ports.WorkUploadInput) (*domain.PortfolioItem, error) {
	data, contentType, ext, err := readImage(input.File)
	if err != nil {
		return nil, err
	}

	key := "portfolio/" + uuid.NewString() + "." + ext
	url, err := s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("media store put failed")
		return nil, fmt.Errorf("store media: %w", err)
	}

	item, err := s.photographers.AppendPortfolioItem(ctx, ownerID, domain.PortfolioItem{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    url,
		Category:    domain.PortfolioCategory(input.Category),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", ownerID).Str("key", key).Msg("portfolio work uploaded")
	return item, nil
}

func (s *MediaService) UploadProfilePicture(ctx context.Context, userID string, file *ports.MediaUpload) (string, error) {
	data, contentType, ext, err := readImage(file)
	if err != nil {
		return "", err
	}

	uid, err := parseOwnerID(userID)
	if err != nil {
		return "", err
	}
	if _, err := s.users.FindByID(ctx, uid); err != nil {
		return "", err
	}

	key := "avatars/" + uuid.NewString() + "." + ext
	url, err := s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("media store put failed")
		return "", fmt.Errorf("store media: %w", err)
	}

	if err := s.users.SetProfilePicture(ctx, uid, url); err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", userID).Str("key", key).Msg("profile picture replaced")
	return url, nil
}

// readImage enforces presence, the size ceiling and the raster-image
// allow-list. The type check sniffs content signatures so a renamed payload
// cannot spoof its way through.
func readImage(file *ports.MediaUpload) (data []byte, contentType, ext string, err error) {
	ve := &domain.ValidationError{}
	if file == nil || file.Reader == nil {
		return nil, "", "", ve.Add("file", "file required")
	}
	if file.Size > MaxUploadBytes {
		return nil, "", "", ve.Add("file", "file exceeds the 5 MiB limit")
	}

	// Read one byte past the ceiling so undeclared oversize payloads are
	// caught even when the reported size lies.
	data, err = io.ReadAll(io.LimitReader(file.Reader, MaxUploadBytes+1))
	if err != nil {
		return nil, "", "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, "", "", ve.Add("file", "file required")
	}
	if len(data) > MaxUploadBytes {
		return nil, "", "", ve.Add("file", "file exceeds the 5 MiB limit")
	}

	contentType = http.DetectContentType(data)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, "", "", ve.Add("file", "file type must be one of: jpeg, png, gif, webp")
	}
	return data, contentType, ext, nil
}
