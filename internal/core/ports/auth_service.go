package ports

import (
	"context"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
)

// RegisterInput carries everything needed to create an identity.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

// AuthResult is returned by both registration and login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// TokenClaims are the verified identity claims decoded from a session token.
type TokenClaims struct {
	UserID string
	Role   string
}

// AuthService owns identity, password hashing and session token issuance.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// VerifyToken is stateless; it never touches storage.
	VerifyToken(token string) (*TokenClaims, error)
}
