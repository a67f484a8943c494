package handler

import (
	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
	"github.com/photographerlagbe/marketplace-api/internal/core/ports"
)

// --- Request types ---

type coordinatesRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type locationRequest struct {
	City        string              `json:"city"  validate:"required"`
	State       string              `json:"state" validate:"required"`
	Coordinates *coordinatesRequest `json:"coordinates,omitempty"`
}

type serviceOfferingRequest struct {
	Name          string  `json:"name"           validate:"required,max=100"`
	Description   string  `json:"description"    validate:"max=500"`
	Price         float64 `json:"price"          validate:"min=0"`
	DurationHours float64 `json:"duration_hours" validate:"min=0.5"`
}

type certificationRequest struct {
	Name           string `json:"name" validate:"required"`
	Issuer         string `json:"issuer"`
	Year           int    `json:"year"`
	CertificateURL string `json:"certificate_url"`
}

type socialMediaRequest struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	Website   string `json:"website"`
}

type dayAvailabilityRequest struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

type createProfileRequest struct {
	BusinessName    string                            `json:"business_name"   validate:"required,min=2,max=100"`
	Bio             string                            `json:"bio"             validate:"required,min=10,max=1000"`
	Specializations []string                          `json:"specializations" validate:"required,min=1"`
	Experience      int                               `json:"experience"      validate:"min=0,max=50"`
	HourlyRate      float64                           `json:"hourly_rate"     validate:"min=0"`
	Location        locationRequest                   `json:"location"        validate:"required"`
	Services        []serviceOfferingRequest          `json:"services,omitempty"`
	Availability    map[string]dayAvailabilityRequest `json:"availability,omitempty"`
	Equipment       []string                          `json:"equipment,omitempty"`
	Certifications  []certificationRequest            `json:"certifications,omitempty"`
	SocialMedia     *socialMediaRequest               `json:"social_media,omitempty"`
}

// updateProfileRequest is a partial update: nil fields stay untouched.
// Bounds are re-checked by the entity validation contract in the service.
type updateProfileRequest struct {
	BusinessName    *string                            `json:"business_name,omitempty"`
	Bio             *string                            `json:"bio,omitempty"`
	Specializations *[]string                          `json:"specializations,omitempty"`
	Experience      *int                               `json:"experience,omitempty"`
	HourlyRate      *float64                           `json:"hourly_rate,omitempty"`
	Location        *locationRequest                   `json:"location,omitempty"`
	Services        *[]serviceOfferingRequest          `json:"services,omitempty"`
	Availability    *map[string]dayAvailabilityRequest `json:"availability,omitempty"`
	Equipment       *[]string                          `json:"equipment,omitempty"`
	Certifications  *[]certificationRequest            `json:"certifications,omitempty"`
	SocialMedia     *socialMediaRequest                `json:"social_media,omitempty"`
}

// --- Response types ---

// profileResponse serializes the stored profile plus the owner's public
// identity. The password hash is excluded at the domain type.
type profileResponse struct {
	*domain.Photographer
	Owner ports.OwnerInfo `json:"owner"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type directoryResponse struct {
	Photographers []profileResponse  `json:"photographers"`
	Pagination    paginationResponse `json:"pagination"`
}

type portfolioItemResponse struct {
	Item domain.PortfolioItem `json:"item"`
}

type messageResponse struct {
	Message string `json:"message"`
}
