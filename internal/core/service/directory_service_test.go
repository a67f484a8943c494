package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
	"github.com/photographerlagbe/marketplace-api/internal/core/ports"
)

// seedProfile inserts an active profile directly, bypassing the service.
func seedProfile(users *stubUserRepo, profiles *stubProfileRepo, city string, rate float64, specs ...domain.Specialization) *domain.Photographer {
	owner := users.seedUser(domain.RolePhotographer)
	p := &domain.Photographer{
		ID:              primitive.NewObjectID(),
		UserID:          owner.ID,
		BusinessName:    "Studio " + owner.ID.Hex()[:6],
		Bio:             "Professional photography services for every occasion.",
		Specializations: specs,
		HourlyRate:      rate,
		Location:        domain.Location{City: city, State: "Dhaka"},
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}
	profiles.byOwner[owner.ID] = p
	return p
}

func TestDirectoryService_List_FiltersConjunctive(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewDirectoryService(profiles, users, discardLogger)

	seedProfile(users, profiles, "Dhaka", 2000, domain.SpecWedding)
	seedProfile(users, profiles, "Dhaka", 5000, domain.SpecWedding)
	seedProfile(users, profiles, "Chittagong", 2000, domain.SpecWedding)
	seedProfile(users, profiles, "Dhaka", 2000, domain.SpecFood)

	max := 3000.0
	page, err := svc.List(context.Background(), ports.DirectoryQuery{
		City:           "dhaka",
		Specialization: string(domain.SpecWedding),
		MaxRate:        &max,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("expected exactly one match, got total=%d items=%d", page.Total, len(page.Items))
	}
	got := page.Items[0].Photographer
	if got.Location.City != "Dhaka" || got.HourlyRate != 2000 {
		t.Fatalf("wrong profile matched: %+v", got)
	}
}

func TestDirectoryService_List_ExcludesInactive(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewDirectoryService(profiles, users, discardLogger)

	seedProfile(users, profiles, "Dhaka", 2000, domain.SpecWedding)
	hidden := seedProfile(users, profiles, "Dhaka", 2000, domain.SpecWedding)
	hidden.IsActive = false

	page, err := svc.List(context.Background(), ports.DirectoryQuery{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("expected 1 visible profile, got %d", page.Total)
	}
}

func TestDirectoryService_List_UnknownSpecializationMatchesNothing(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewDirectoryService(profiles, users, discardLogger)

	seedProfile(users, profiles, "Dhaka", 2000, domain.SpecWedding)

	page, err := svc.List(context.Background(), ports.DirectoryQuery{Specialization: "Underwater Basketweaving"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 0 || len(page.Items) != 0 {
		t.Fatalf("expected empty page, got total=%d items=%d", page.Total, len(page.Items))
	}
}

func TestDirectoryService_List_PaginationDefaultsAndCaps(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewDirectoryService(profiles, users, discardLogger)

	for i := 0; i < 12; i++ {
		seedProfile(users, profiles, "Dhaka", float64(1000+i), domain.SpecEvent)
	}

	// Defaults: page 1, 10 per page.
	page, err := svc.List(context.Background(), ports.DirectoryQuery{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Page != 1 || page.PageSize != 10 {
		t.Fatalf("expected defaults page=1 size=10, got page=%d size=%d", page.Page, page.PageSize)
	}
	if len(page.Items) != 10 || page.Total != 12 || page.TotalPages != 2 {
		t.Fatalf("unexpected page shape: items=%d total=%d total_pages=%d", len(page.Items), page.Total, page.TotalPages)
	}

	// Page past the data is empty, not an error.
	page, err = svc.List(context.Background(), ports.DirectoryQuery{Page: 5})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page.Items) != 0 || page.Total != 12 {
		t.Fatalf("expected empty page 5, got items=%d total=%d", len(page.Items), page.Total)
	}

	// Oversized page size is capped, garbage page is clamped to 1.
	page, err = svc.List(context.Background(), ports.DirectoryQuery{Page: -3, PageSize: 500})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Page != 1 || page.PageSize != 50 {
		t.Fatalf("expected clamped page=1 size=50, got page=%d size=%d", page.Page, page.PageSize)
	}
}

func TestDirectoryService_List_RetriesOnceOnTimeout(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewDirectoryService(profiles, users, discardLogger)

	seedProfile(users, profiles, "Dhaka", 2000, domain.SpecWedding)
	profiles.listErr = domain.ErrTimeout

	page, err := svc.List(context.Background(), ports.DirectoryQuery{})
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("expected 1 result after retry, got %d", page.Total)
	}
}

func TestDirectoryService_List_TimeoutSurfacesAfterRetry(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()

	// The stub clears listErr after one failure, so persistent timeouts need
	// a shim that always fails.
	repo := &alwaysTimeoutRepo{stubProfileRepo: profiles}
	svc := NewDirectoryService(repo, users, discardLogger)

	if _, err := svc.List(context.Background(), ports.DirectoryQuery{}); !errors.Is(err, domain.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

type alwaysTimeoutRepo struct {
	*stubProfileRepo
}

func (r *alwaysTimeoutRepo) List(context.Context, ports.DirectoryFilter) ([]*domain.Photographer, int64, error) {
	return nil, 0, domain.ErrTimeout
}

func TestDirectoryService_GetByID_Success(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewDirectoryService(profiles, users, discardLogger)

	p := seedProfile(users, profiles, "Dhaka", 2000, domain.SpecWedding)

	item, err := svc.GetByID(context.Background(), p.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if item.Photographer.ID != p.ID {
		t.Fatalf("wrong profile returned")
	}
	if item.Owner.ID == "" {
		t.Fatalf("expected owner join")
	}
}

func TestDirectoryService_GetByID_NotFoundShapes(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewDirectoryService(profiles, users, discardLogger)

	inactive := seedProfile(users, profiles, "Dhaka", 2000, domain.SpecWedding)
	inactive.IsActive = false

	// Malformed, nonexistent and inactive ids are indistinguishable.
	for _, id := range []string{"garbage", primitive.NewObjectID().Hex(), inactive.ID.Hex()} {
		if _, err := svc.GetByID(context.Background(), id); !errors.Is(err, domain.ErrProfileNotFound) {
			t.Fatalf("id %q: expected ErrProfileNotFound, got %v", id, err)
		}
	}
}
