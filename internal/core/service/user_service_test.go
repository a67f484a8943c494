package service

import (
	"context"
	"errors"
	"testing"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
	"github.com/photographerlagbe/marketplace-api/internal/core/ports"
)

func TestUserService_GetMe_Client(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewUserService(users, profiles, discardLogger)

	user := users.seedUser(domain.RoleClient)

	view, err := svc.GetMe(context.Background(), user.ID.Hex())
	if err != nil {
		t.Fatalf("GetMe returned error: %v", err)
	}
	if view.User.ID != user.ID {
		t.Fatalf("wrong user returned")
	}
	if view.Photographer != nil {
		t.Fatalf("client must not carry a photographer profile")
	}
}

func TestUserService_GetMe_PhotographerWithProfile(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	photographers := NewPhotographerService(profiles, users, discardLogger)
	svc := NewUserService(users, profiles, discardLogger)

	owner := users.seedUser(domain.RolePhotographer)
	if _, err := photographers.CreateProfile(context.Background(), owner.ID.Hex(), validProfileInput()); err != nil {
		t.Fatalf("profile create failed: %v", err)
	}

	view, err := svc.GetMe(context.Background(), owner.ID.Hex())
	if err != nil {
		t.Fatalf("GetMe returned error: %v", err)
	}
	if view.Photographer == nil || view.Photographer.UserID != owner.ID {
		t.Fatalf("expected joined photographer profile")
	}
}

func TestUserService_GetMe_PhotographerWithoutProfile(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewUserService(users, profiles, discardLogger)

	owner := users.seedUser(domain.RolePhotographer)

	view, err := svc.GetMe(context.Background(), owner.ID.Hex())
	if err != nil {
		t.Fatalf("GetMe returned error: %v", err)
	}
	if view.Photographer != nil {
		t.Fatalf("profile-less photographer must return nil profile, not error")
	}
}

func TestUserService_GetMe_BadSubject(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewUserService(users, profiles, discardLogger)

	if _, err := svc.GetMe(context.Background(), "not-hex"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestUserService_UpdateMe_Success(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewUserService(users, profiles, discardLogger)

	user := users.seedUser(domain.RoleClient)

	name := "Renamed Person"
	addr := &domain.Address{City: "Sylhet"}
	updated, err := svc.UpdateMe(context.Background(), user.ID.Hex(), ports.UserUpdate{Name: &name, Address: addr})
	if err != nil {
		t.Fatalf("UpdateMe returned error: %v", err)
	}
	if updated.Name != "Renamed Person" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.Address == nil || updated.Address.City != "Sylhet" {
		t.Fatalf("address not updated: %+v", updated.Address)
	}
	// Untouched identity fields survive.
	if updated.Email != user.Email || updated.Phone != user.Phone {
		t.Fatalf("untouched fields changed")
	}
}

func TestUserService_UpdateMe_Validation(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewUserService(users, profiles, discardLogger)

	user := users.seedUser(domain.RoleClient)

	phone := "12345"
	_, err := svc.UpdateMe(context.Background(), user.ID.Hex(), ports.UserUpdate{Phone: &phone})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	stored, _ := users.FindByID(context.Background(), user.ID)
	if stored.Phone != user.Phone {
		t.Fatalf("rejected update modified stored user")
	}
}

func TestUserService_UpdateMe_EmptyFieldsRejected(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewUserService(users, profiles, discardLogger)

	user := users.seedUser(domain.RoleClient)

	// A supplied empty value must fail validation, not be persisted.
	empty := ""
	for _, upd := range []ports.UserUpdate{
		{Name: &empty},
		{Phone: &empty},
	} {
		_, err := svc.UpdateMe(context.Background(), user.ID.Hex(), upd)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError for %+v, got %v", upd, err)
		}
	}

	stored, _ := users.FindByID(context.Background(), user.ID)
	if stored.Name != user.Name || stored.Phone != user.Phone {
		t.Fatalf("rejected update modified stored user")
	}
}
