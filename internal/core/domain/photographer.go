package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Specialization is a fixed photography discipline a photographer offers.
type Specialization string

const (
	SpecWedding     Specialization = "Wedding Photography"
	SpecPortrait    Specialization = "Portrait Photography"
	SpecEvent       Specialization = "Event Photography"
	SpecCommercial  Specialization = "Commercial Photography"
	SpecFashion     Specialization = "Fashion Photography"
	SpecProduct     Specialization = "Product Photography"
	SpecRealEstate  Specialization = "Real Estate Photography"
	SpecFood        Specialization = "Food Photography"
	SpecNature      Specialization = "Nature Photography"
	SpecStreet      Specialization = "Street Photography"
	SpecSports      Specialization = "Sports Photography"
	SpecDocumentary Specialization = "Documentary Photography"
)

var specializations = map[Specialization]struct{}{
	SpecWedding: {}, SpecPortrait: {}, SpecEvent: {}, SpecCommercial: {},
	SpecFashion: {}, SpecProduct: {}, SpecRealEstate: {}, SpecFood: {},
	SpecNature: {}, SpecStreet: {}, SpecSports: {}, SpecDocumentary: {},
}

// Valid reports whether s is a member of the specialization enum.
func (s Specialization) Valid() bool {
	_, ok := specializations[s]
	return ok
}

// PortfolioCategory classifies a single portfolio item.
type PortfolioCategory string

const (
	CategoryWedding     PortfolioCategory = "Wedding"
	CategoryPortrait    PortfolioCategory = "Portrait"
	CategoryEvent       PortfolioCategory = "Event"
	CategoryCommercial  PortfolioCategory = "Commercial"
	CategoryFashion     PortfolioCategory = "Fashion"
	CategoryProduct     PortfolioCategory = "Product"
	CategoryRealEstate  PortfolioCategory = "Real Estate"
	CategoryFood        PortfolioCategory = "Food"
	CategoryNature      PortfolioCategory = "Nature"
	CategoryStreet      PortfolioCategory = "Street"
	CategorySports      PortfolioCategory = "Sports"
	CategoryDocumentary PortfolioCategory = "Documentary"
)

var portfolioCategories = map[PortfolioCategory]struct{}{
	CategoryWedding: {}, CategoryPortrait: {}, CategoryEvent: {}, CategoryCommercial: {},
	CategoryFashion: {}, CategoryProduct: {}, CategoryRealEstate: {}, CategoryFood: {},
	CategoryNature: {}, CategoryStreet: {}, CategorySports: {}, CategoryDocumentary: {},
}

// Valid reports whether c is a member of the portfolio category enum.
func (c PortfolioCategory) Valid() bool {
	_, ok := portfolioCategories[c]
	return ok
}

// PortfolioItem is embedded in its parent photographer; it has no identity
// outside the parent document. New items go to the head of the sequence.
type PortfolioItem struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string             `json:"image_url" bson:"image_url"`
	Category    PortfolioCategory  `json:"category" bson:"category"`
	UploadedAt  time.Time          `json:"uploaded_at" bson:"uploaded_at"`
}

// ServiceOffering is a named, priced package a photographer sells.
type ServiceOffering struct {
	Name          string  `json:"name" bson:"name"`
	Description   string  `json:"description,omitempty" bson:"description,omitempty"`
	Price         float64 `json:"price" bson:"price"`
	DurationHours float64 `json:"duration_hours" bson:"duration_hours"`
}

// DayAvailability is the bookable window for one weekday.
type DayAvailability struct {
	Start     string `json:"start,omitempty" bson:"start,omitempty"`
	End       string `json:"end,omitempty" bson:"end,omitempty"`
	Available bool   `json:"available" bson:"available"`
}

// Availability maps lowercase weekday names ("monday".."sunday") to windows.
type Availability map[string]DayAvailability

// DefaultAvailability marks every weekday available with no fixed window.
func DefaultAvailability() Availability {
	a := make(Availability, 7)
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		a[day] = DayAvailability{Available: true}
	}
	return a
}

// Coordinates is an optional geographic point for a studio location.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Location is where a photographer operates. City and state are required.
type Location struct {
	City        string       `json:"city" bson:"city"`
	State       string       `json:"state" bson:"state"`
	Coordinates *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

// Certification is a credential a photographer lists on their profile.
type Certification struct {
	Name           string `json:"name" bson:"name"`
	Issuer         string `json:"issuer,omitempty" bson:"issuer,omitempty"`
	Year           int    `json:"year,omitempty" bson:"year,omitempty"`
	CertificateURL string `json:"certificate_url,omitempty" bson:"certificate_url,omitempty"`
}

// SocialMedia holds optional outbound profile links.
type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Website   string `json:"website,omitempty" bson:"website,omitempty"`
}

// Rating is the stored aggregate; review submission is out of scope.
type Rating struct {
	Average float64 `json:"average" bson:"average"`
	Count   int     `json:"count" bson:"count"`
}

// Photographer is the extended business profile, owned 1:1 by a user with
// the photographer role. The owning user reference carries a unique index.
type Photographer struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"user_id" bson:"user"`
	BusinessName    string             `json:"business_name" bson:"business_name"`
	Bio             string             `json:"bio" bson:"bio"`
	Specializations []Specialization   `json:"specializations" bson:"specializations"`
	Experience      int                `json:"experience" bson:"experience"`
	HourlyRate      float64            `json:"hourly_rate" bson:"hourly_rate"`
	Location        Location           `json:"location" bson:"location"`
	Portfolio       []PortfolioItem    `json:"portfolio" bson:"portfolio"`
	Services        []ServiceOffering  `json:"services" bson:"services"`
	Availability    Availability       `json:"availability" bson:"availability"`
	Equipment       []string           `json:"equipment" bson:"equipment"`
	Certifications  []Certification    `json:"certifications" bson:"certifications"`
	SocialMedia     SocialMedia        `json:"social_media" bson:"social_media"`
	Rating          Rating             `json:"rating" bson:"rating"`
	IsVerified      bool               `json:"is_verified" bson:"is_verified"`
	IsActive        bool               `json:"is_active" bson:"is_active"`
	Featured        bool               `json:"featured" bson:"featured"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// Validate is the single validation contract for the photographer entity.
// Create and update both run the full document through it, so the two paths
// cannot diverge in what they permit. Violations are reported, never clamped.
func (p *Photographer) Validate() error {
	ve := &ValidationError{}
	if n := len(strings.TrimSpace(p.BusinessName)); n < 2 || n > 100 {
		ve.Add("business_name", "business name must be between 2 and 100 characters")
	}
	if n := len(strings.TrimSpace(p.Bio)); n < 10 || n > 1000 {
		ve.Add("bio", "bio must be between 10 and 1000 characters")
	}
	if len(p.Specializations) == 0 {
		ve.Add("specializations", "at least one specialization is required")
	}
	for _, s := range p.Specializations {
		if !s.Valid() {
			ve.Add("specializations", "unknown specialization: "+string(s))
			break
		}
	}
	if p.Experience < 0 || p.Experience > 50 {
		ve.Add("experience", "experience must be between 0 and 50 years")
	}
	if p.HourlyRate < 0 {
		ve.Add("hourly_rate", "hourly rate cannot be negative")
	}
	if strings.TrimSpace(p.Location.City) == "" {
		ve.Add("location.city", "city is required")
	}
	if strings.TrimSpace(p.Location.State) == "" {
		ve.Add("location.state", "state is required")
	}
	for _, svc := range p.Services {
		if svc.Name == "" || len(svc.Name) > 100 {
			ve.Add("services.name", "service name is required and cannot exceed 100 characters")
		}
		if len(svc.Description) > 500 {
			ve.Add("services.description", "service description cannot exceed 500 characters")
		}
		if svc.Price < 0 {
			ve.Add("services.price", "service price cannot be negative")
		}
		if svc.DurationHours < 0.5 {
			ve.Add("services.duration_hours", "service duration must be at least 0.5 hours")
		}
	}
	for _, eq := range p.Equipment {
		if len(eq) > 100 {
			ve.Add("equipment", "equipment name cannot exceed 100 characters")
			break
		}
	}
	if p.Rating.Average < 0 || p.Rating.Average > 5 {
		ve.Add("rating.average", "rating average must be between 0 and 5")
	}
	if p.Rating.Count < 0 {
		ve.Add("rating.count", "rating count cannot be negative")
	}
	return ve.Err()
}

// ValidatePortfolioItem checks an item before it is appended.
func ValidatePortfolioItem(item *PortfolioItem) error {
	ve := &ValidationError{}
	if len(item.Title) > 100 {
		ve.Add("title", "title cannot exceed 100 characters")
	}
	if len(item.Description) > 500 {
		ve.Add("description", "description cannot exceed 500 characters")
	}
	if item.ImageURL == "" {
		ve.Add("image_url", "image reference is required")
	}
	if !item.Category.Valid() {
		ve.Add("category", "unknown category: "+string(item.Category))
	}
	return ve.Err()
}
