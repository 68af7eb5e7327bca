package services

import (
	"context"
	"errors"
	"route-planner-service/internal/adapters/catalog"
	"route-planner-service/internal/adapters/repositories"
	"route-planner-service/internal/domain"
	"testing"
)

func TestFavoriteServiceAddValidates(t *testing.T) {
	f := newFixture()
	svc := NewFavoriteService(repositories.NewMemoryFavoriteRepository(), f.svc)

	if _, err := svc.Add(context.Background(), "Home", "  "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("err = %v, want invalid input", err)
	}

	fav, err := svc.Add(context.Background(), " Home ", " boston ")
	if err != nil {
		t.Fatal(err)
	}
	if fav.Name != "Home" || fav.Location != "boston" {
		t.Errorf("fav = %+v", fav)
	}
}

func TestFavoriteServiceRouteBetween(t *testing.T) {
	f := newFixture()
	svc := NewFavoriteService(repositories.NewMemoryFavoriteRepository(), f.svc)
	ctx := context.Background()

	for _, loc := range []string{"boston", "cambridge"} {
		if _, err := svc.Add(ctx, loc, loc); err != nil {
			t.Fatal(err)
		}
	}

	r, err := svc.RouteBetween(ctx, 1, 0, domain.VehicleFoot)
	if err != nil {
		t.Fatalf("RouteBetween: %v", err)
	}
	if r.Origin.DisplayName != "Cambridge, Massachusetts, United States" {
		t.Errorf("origin = %q", r.Origin.DisplayName)
	}

	if _, err := svc.RouteBetween(ctx, 0, 2, domain.VehicleFoot); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("out of range err = %v, want invalid input", err)
	}
	if geo, _ := f.provider.Calls(); geo != 2 {
		t.Errorf("geocode calls = %d, want 2 (none for the bad index)", geo)
	}

	if _, err := svc.RouteFrom(ctx, 0, "cambridge", domain.VehicleAirplane); err != nil {
		t.Errorf("RouteFrom: %v", err)
	}
}

func TestRecommendationServiceRouteTo(t *testing.T) {
	f := newFixture()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	svc := NewRecommendationService(cat, f.svc)
	ctx := context.Background()

	r, err := svc.RouteTo(ctx, "manila", "Manila", 0, domain.VehicleFoot)
	if err != nil {
		t.Fatalf("RouteTo: %v", err)
	}
	if r.Destination.DisplayName != "Intramuros, Metro Manila, Philippines" {
		t.Errorf("destination = %q", r.Destination.DisplayName)
	}

	if _, err := svc.RouteTo(ctx, "manila", "Tokyo", 0, domain.VehicleFoot); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown city err = %v, want not found", err)
	}
	if _, err := svc.RouteTo(ctx, "manila", "Manila", 9, domain.VehicleFoot); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("bad spot err = %v, want invalid input", err)
	}
}
