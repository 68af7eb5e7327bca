package main

import (
	"bufio"
	"bytes"
	"context"
	"route-planner-service/internal/adapters/catalog"
	"route-planner-service/internal/adapters/mock"
	"route-planner-service/internal/adapters/repositories"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/services"
	"strings"
	"testing"
)

var places = []mock.Place{
	{Query: "boston", Lat: 42.3554334, Lon: -71.060511, Name: "Boston", State: "Massachusetts", Country: "United States"},
	{Query: "cambridge", Lat: 42.3750997, Lon: -71.1056157, Name: "Cambridge", State: "Massachusetts", Country: "United States"},
	{Query: "Boston, Massachusetts, United States", Lat: 42.3554334, Lon: -71.060511, Name: "Boston", State: "Massachusetts", Country: "United States"},
	{Query: "Cambridge, Massachusetts, United States", Lat: 42.3750997, Lon: -71.1056157, Name: "Cambridge", State: "Massachusetts", Country: "United States"},
}

var leg = domain.RouteLeg{
	DistanceMeters: 16000,
	TimeMillis:     1_800_000,
	Instructions: []domain.Instruction{
		{Text: "Continue onto Cambridge Street", DistanceMeters: 15000},
		{Text: "Arrive at destination", DistanceMeters: 1000},
	},
}

func newMenu(t *testing.T, input string) (*menu, *bytes.Buffer) {
	t.Helper()

	provider := mock.NewProvider(places, leg)
	routes := services.NewRouteService(provider, provider, repositories.NewMemoryHistoryRepository())
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}

	out := &bytes.Buffer{}
	return &menu{
		in:        bufio.NewReader(strings.NewReader(input)),
		out:       out,
		routes:    routes,
		favorites: services.NewFavoriteService(repositories.NewMemoryFavoriteRepository(), routes),
		recs:      services.NewRecommendationService(cat, routes),
	}, out
}

func TestMenuDirectionsAndHistory(t *testing.T) {
	m, out := newMenu(t, "1\nboston\ncambridge\n3\n8\n")
	m.run(context.Background())

	got := out.String()
	for _, want := range []string{
		"Directions from Boston, Massachusetts, United States to Cambridge, Massachusetts, United States by car",
		"Distance Traveled: 16.00 km / 9.94 miles",
		"Trip Duration: 00:30:00",
		"1. Continue onto Cambridge Street (15.00 km / 9.32 miles)",
		"2. Arrive at destination (1.00 km / 0.62 miles)",
		"1. Boston, Massachusetts, United States -> Cambridge, Massachusetts, United States | car | 16.00 km | 00:30:00",
		"Goodbye!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}

func TestMenuQuitCancelsDirections(t *testing.T) {
	m, out := newMenu(t, "1\nq\n3\n8\n")
	m.run(context.Background())

	if !strings.Contains(out.String(), "No route history found.") {
		t.Errorf("expected empty history after quit:\n%s", out.String())
	}
}

func TestMenuChangeVehicle(t *testing.T) {
	m, out := newMenu(t, "2\n4\n8\n")
	m.run(context.Background())

	if m.vehicle != domain.VehicleAirplane {
		t.Errorf("vehicle = %q, want airplane", m.vehicle)
	}
	if !strings.Contains(out.String(), "Vehicle profile set to airplane.") {
		t.Errorf("missing confirmation:\n%s", out.String())
	}
}

func TestMenuChangeVehicleRejectsUnknown(t *testing.T) {
	m, out := newMenu(t, "2\nboat\n8\n")
	m.run(context.Background())

	if m.vehicle != domain.VehicleCar {
		t.Errorf("vehicle = %q, want car", m.vehicle)
	}
	if !strings.Contains(out.String(), "Invalid vehicle. Keeping car.") {
		t.Errorf("missing rejection:\n%s", out.String())
	}
}

func TestMenuFavoritesAndReverse(t *testing.T) {
	input := strings.Join([]string{
		"5", "2", "Home", "boston",
		"5", "2", "Work", "cambridge",
		"5", "4", "1", "2",
		"6",
		"3",
		"8",
	}, "\n") + "\n"
	m, out := newMenu(t, input)
	m.run(context.Background())

	got := out.String()
	for _, want := range []string{
		`Saved "Home" (boston).`,
		"[2] Work - cambridge",
		"Directions from Cambridge, Massachusetts, United States to Boston, Massachusetts, United States by car",
		"2. Cambridge, Massachusetts, United States -> Boston, Massachusetts, United States",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}

func TestMenuReverseWithoutHistory(t *testing.T) {
	m, out := newMenu(t, "6\n8\n")
	m.run(context.Background())

	if !strings.Contains(out.String(), "Not found:") {
		t.Errorf("expected not found message:\n%s", out.String())
	}
}

func TestMenuEndOfInputExits(t *testing.T) {
	m, _ := newMenu(t, "")
	m.run(context.Background())
}
