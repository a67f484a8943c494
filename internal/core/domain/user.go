package domain

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleClient       = "client"
	RolePhotographer = "photographer"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phonePattern matches Bangladeshi mobile numbers (operator prefix 013-019).
var phonePattern = regexp.MustCompile(`^01[3-9]\d{8}$`)

// Address is an optional postal address attached to a user.
type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
}

// User is the identity record for both clients and photographers.
// The password hash never leaves the process boundary.
type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email" bson:"email"`
	PasswordHash   string             `json:"-" bson:"password_hash"`
	Phone          string             `json:"phone" bson:"phone"`
	Role           string             `json:"role" bson:"role"`
	ProfilePicture string             `json:"profile_picture,omitempty" bson:"profile_picture,omitempty"`
	Address        *Address           `json:"address,omitempty" bson:"address,omitempty"`
	// IsActive is reserved for soft deactivation; no operation flips it yet.
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NormalizeEmail lowercases and trims an email for storage and lookup;
// uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidRole reports whether role is one of the account kinds fixed at registration.
func ValidRole(role string) bool {
	return role == RoleClient || role == RolePhotographer
}

// ValidateRegistration checks every registration field and reports all
// violations at once. Password is the plaintext, checked before hashing.
func ValidateRegistration(name, email, password, phone, role string) error {
	ve := &ValidationError{}
	if n := len(strings.TrimSpace(name)); n < 2 || n > 50 {
		ve.Add("name", "name must be between 2 and 50 characters")
	}
	if !emailPattern.MatchString(NormalizeEmail(email)) {
		ve.Add("email", "email must be a valid email address")
	}
	if len(password) < 6 {
		ve.Add("password", "password must be at least 6 characters")
	}
	if !phonePattern.MatchString(phone) {
		ve.Add("phone", "phone must be a valid Bangladeshi mobile number")
	}
	if !ValidRole(role) {
		ve.Add("role", "role must be either client or photographer")
	}
	return ve.Err()
}

// ValidateUserUpdate checks the self-service editable fields. A nil field was
// not supplied and is skipped; a supplied field is held to the registration
// bounds, empty string included, so an update cannot store a value
// registration would have rejected.
func ValidateUserUpdate(name, phone *string) error {
	ve := &ValidationError{}
	if name != nil {
		if n := len(strings.TrimSpace(*name)); n < 2 || n > 50 {
			ve.Add("name", "name must be between 2 and 50 characters")
		}
	}
	if phone != nil && !phonePattern.MatchString(*phone) {
		ve.Add("phone", "phone must be a valid Bangladeshi mobile number")
	}
	return ve.Err()
}
