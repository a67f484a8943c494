package ports

import "context"

// DirectoryQuery is the public listing request as it arrives from transport.
// Sort field and order are validated against a whitelist by the service.
type DirectoryQuery struct {
	City           string
	Specialization string
	MinRate        *float64
	MaxRate        *float64
	SortBy         string // created_at (default), hourly_rate, experience, rating, business_name
	SortOrder      string // asc | desc (default)
	Page           int
	PageSize       int
}

// DirectoryItem is one public listing entry.
type DirectoryItem = ProfileView

// DirectoryPage is a stable page of listings: total and total_pages come
// from a separate count of the same filter predicate.
type DirectoryPage struct {
	Items      []DirectoryItem
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// DirectoryService filters, sorts and paginates the public directory.
// Inactive profiles are never returned; an inactive or nonexistent id is the
// same NotFound on purpose.
type DirectoryService interface {
	List(ctx context.Context, q DirectoryQuery) (*DirectoryPage, error)
	GetByID(ctx context.Context, id string) (*DirectoryItem, error)
}
