package ports

import (
	"context"
	"io"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
)

// MediaStore is the blob store collaborator for uploaded media.
type MediaStore interface {
	// Put stores the object under key and returns the public URL.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// MediaUpload is a single inbound media payload.
type MediaUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// WorkUploadInput carries a portfolio upload: one payload plus its metadata.
type WorkUploadInput struct {
	File        *MediaUpload // nil means no file was supplied
	Category    string
	Title       string
	Description string
}

// MediaService validates uploads, stores the bytes, and attaches the
// resulting reference to the owner's profile.
type MediaService interface {
	// UploadWork appends a portfolio item and returns it.
	UploadWork(ctx context.Context, ownerID string, input WorkUploadInput) (*domain.PortfolioItem, error)
	// UploadProfilePicture replaces the owner's single picture reference and
	// returns the new URL.
	UploadProfilePicture(ctx context.Context, userID string, file *MediaUpload) (string, error)
}
