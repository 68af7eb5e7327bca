package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/services"
	"strconv"
	"strings"

	"github.com/kr/pretty"
)

const rule = "========================================"

type menu struct {
	in        *bufio.Reader
	out       io.Writer
	routes    *services.RouteService
	favorites *services.FavoriteService
	recs      *services.RecommendationService
	vehicle   domain.Vehicle
	debug     bool
}

// run loops until the user exits or input ends.
func (m *menu) run(ctx context.Context) {
	if m.vehicle == "" {
		m.vehicle = domain.VehicleCar
	}

	for {
		m.println(rule)
		m.println("  ROUTE PLANNER")
		m.println(rule)
		m.printf("Vehicle: %s\n", m.vehicle)
		m.println("[1] Get Directions")
		m.println("[2] Change Vehicle Profile")
		m.println("[3] View Route History")
		m.println("[4] Recommendations")
		m.println("[5] Favorites")
		m.println("[6] Reverse Last Route")
		m.println("[7] Clear History")
		m.println("[8] Exit")
		m.println(rule)

		choice, ok := m.prompt("Enter choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.directions(ctx)
		case "2":
			m.changeVehicle()
		case "3":
			m.history(ctx)
		case "4":
			m.recommendations(ctx)
		case "5":
			m.favoritesMenu(ctx)
		case "6":
			m.println("\nReversing last route...")
			m.show(m.routes.ReverseLastRoute(ctx))
		case "7":
			if err := m.routes.ClearHistory(ctx); err != nil {
				m.fail(err)
			} else {
				m.println("Route history cleared.")
			}
		case "8":
			m.println("Goodbye!")
			return
		default:
			m.println("Invalid choice. Try again.")
		}
		m.println("")
	}
}

func (m *menu) directions(ctx context.Context) {
	start, ok := m.prompt("\nStarting Location: ")
	if !ok || isQuit(start) {
		return
	}
	dest, ok := m.prompt("Destination: ")
	if !ok || isQuit(dest) {
		return
	}
	m.show(m.routes.ComputeRoute(ctx, start, dest, m.vehicle))
}

func (m *menu) changeVehicle() {
	m.println("\nAvailable vehicle profiles:")
	vehicles := domain.Vehicles()
	for i, v := range vehicles {
		m.printf("[%d] %s\n", i+1, v)
	}

	choice, ok := m.prompt("Select vehicle: ")
	if !ok {
		return
	}
	if i, err := strconv.Atoi(choice); err == nil && i >= 1 && i <= len(vehicles) {
		m.vehicle = vehicles[i-1]
	} else if v, err := domain.ParseVehicle(choice); err == nil {
		m.vehicle = v
	} else {
		m.println("Invalid vehicle. Keeping " + string(m.vehicle) + ".")
		return
	}
	m.printf("Vehicle profile set to %s.\n", m.vehicle)
}

func (m *menu) history(ctx context.Context) {
	entries, err := m.routes.History(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	if len(entries) == 0 {
		m.println("No route history found.")
		return
	}

	m.println("\n" + rule)
	m.println(" ROUTE HISTORY")
	m.println(rule)
	for i, e := range entries {
		m.printf("%d. %s -> %s | %s | %s km | %s", i+1, e.Start, e.End, e.Vehicle, e.DistanceText(), e.Duration)
		if !e.Timestamp.IsZero() {
			m.printf(" | %s", e.Timestamp.Format(domain.TimestampLayout))
		}
		m.println("")
	}
}

func (m *menu) recommendations(ctx context.Context) {
	cities := m.recs.Cities()

	m.println("\n" + rule)
	m.println(" CITY RECOMMENDATIONS")
	m.println(rule)
	for i, c := range cities {
		m.printf("[%d] %s\n", i+1, c.Name)
	}

	ci, ok := m.pick("Select a city: ", len(cities))
	if !ok {
		m.println("Invalid city choice.")
		return
	}
	city := cities[ci]

	m.printf("\nTop destinations in %s:\n", city.Name)
	for i, s := range city.Spots {
		m.printf("[%d] %s\n", i+1, s)
	}
	si, ok := m.pick("Select a destination: ", len(city.Spots))
	if !ok {
		m.println("Invalid destination choice.")
		return
	}

	m.println("\nUse a favorite location as your starting point?")
	m.println("[1] Yes, use a favorite")
	m.println("[2] No, enter manually")
	choice, ok := m.prompt("Enter choice: ")
	if !ok {
		return
	}

	var start string
	if choice == "1" {
		fav, ok := m.chooseFavorite(ctx, "Select a favorite: ")
		if !ok {
			return
		}
		start = fav.Location
	} else {
		start, ok = m.prompt("\nEnter your starting location: ")
		if !ok {
			return
		}
	}

	m.show(m.recs.RouteTo(ctx, start, city.Name, si, m.vehicle))
}

func (m *menu) favoritesMenu(ctx context.Context) {
	m.println("\n" + rule)
	m.println(" FAVORITES")
	m.println(rule)
	m.println("[1] View Favorites")
	m.println("[2] Add Favorite")
	m.println("[3] Remove Favorite")
	m.println("[4] Route Between Favorites")
	m.println("[5] Back")

	choice, ok := m.prompt("Enter choice: ")
	if !ok {
		return
	}

	switch choice {
	case "1":
		m.listFavorites(ctx)
	case "2":
		name, ok := m.prompt("Favorite name: ")
		if !ok {
			return
		}
		loc, ok := m.prompt("Location: ")
		if !ok {
			return
		}
		if fav, err := m.favorites.Add(ctx, name, loc); err != nil {
			m.fail(err)
		} else {
			m.printf("Saved %q (%s).\n", fav.Name, fav.Location)
		}
	case "3":
		n, ok := m.listFavorites(ctx)
		if !ok || n == 0 {
			return
		}
		raw, ok := m.prompt("Number to remove: ")
		if !ok {
			return
		}
		i, err := strconv.Atoi(raw)
		if err != nil {
			m.println("Invalid choice.")
			return
		}
		if fav, err := m.favorites.Remove(ctx, i-1); err != nil {
			m.fail(err)
		} else {
			m.printf("Removed %q.\n", fav.Name)
		}
	case "4":
		n, ok := m.listFavorites(ctx)
		if !ok || n == 0 {
			return
		}
		from, ok := m.pick("Start from: ", n)
		if !ok {
			m.println("Invalid choice.")
			return
		}
		to, ok := m.pick("Go to: ", n)
		if !ok {
			m.println("Invalid choice.")
			return
		}
		m.show(m.favorites.RouteBetween(ctx, from, to, m.vehicle))
	}
}

func (m *menu) listFavorites(ctx context.Context) (int, bool) {
	favs, err := m.favorites.List(ctx)
	if err != nil {
		m.fail(err)
		return 0, false
	}
	if len(favs) == 0 {
		m.println("No favorites saved yet.")
		return 0, true
	}
	for i, f := range favs {
		m.printf("[%d] %s - %s\n", i+1, f.Name, f.Location)
	}
	return len(favs), true
}

func (m *menu) chooseFavorite(ctx context.Context, label string) (domain.Favorite, bool) {
	n, ok := m.listFavorites(ctx)
	if !ok || n == 0 {
		m.println("Please add a favorite first.")
		return domain.Favorite{}, false
	}
	i, ok := m.pick(label, n)
	if !ok {
		m.println("Invalid choice.")
		return domain.Favorite{}, false
	}
	fav, err := m.favorites.Get(ctx, i)
	if err != nil {
		m.fail(err)
		return domain.Favorite{}, false
	}
	return fav, true
}

// show prints a route the same way for every entry point.
func (m *menu) show(r domain.RouteResult, err error) {
	if err != nil {
		m.fail(err)
		return
	}

	m.println("\n" + rule)
	m.printf("Directions from %s to %s by %s\n", r.Origin.DisplayName, r.Destination.DisplayName, r.Vehicle)
	m.println(rule)
	m.printf("Distance Traveled: %.2f km / %.2f miles\n", r.DistanceKm, r.DistanceMiles)
	m.printf("Trip Duration: %s\n", r.Duration)
	m.println(rule)
	for _, s := range r.Steps {
		m.printf("%d. %s (%.2f km / %.2f miles)\n", s.Index, s.Text, s.DistanceKm, s.DistanceMiles)
	}
	m.println(rule)

	if m.debug {
		m.printf("%# v\n", pretty.Formatter(r))
	}
}

func (m *menu) fail(err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		m.printf("Not found: %v\n", err)
	case errors.Is(err, domain.ErrInvalidInput):
		m.printf("Invalid input: %v\n", err)
	case errors.Is(err, domain.ErrNetwork):
		m.printf("Network error: %v. Please try again.\n", err)
	case errors.Is(err, domain.ErrUpstream):
		m.printf("Routing service error: %v\n", err)
	default:
		m.printf("Error: %v\n", err)
	}
}

// pick reads a 1-based choice and returns it 0-based.
func (m *menu) pick(label string, n int) (int, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

func (m *menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (m *menu) println(s string) { fmt.Fprintln(m.out, s) }

func (m *menu) printf(format string, args ...any) { fmt.Fprintf(m.out, format, args...) }

func isQuit(s string) bool {
	s = strings.ToLower(s)
	return s == "q" || s == "quit"
}
