package api

import (
	"net/http"
	"reflect"
	"route-planner-service/internal/api/handlers"
	"route-planner-service/internal/services"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewRouter wires HTTP handlers with their services and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(
	routes *services.RouteService,
	favorites *services.FavoriteService,
	recommendations *services.RecommendationService,
) http.Handler {
	mux := http.NewServeMux()
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	routeHandler := &handlers.RouteHandler{Routes: routes, Validate: validate}
	historyHandler := &handlers.HistoryHandler{Routes: routes}
	favHandler := &handlers.FavoriteHandler{Favorites: favorites, Validate: validate}
	recHandler := &handlers.RecommendationHandler{Recommendations: recommendations, Validate: validate}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/geocode", routeHandler.Geocode)
	mux.HandleFunc("/routes", routeHandler.Compute)
	mux.HandleFunc("/routes/reverse", routeHandler.Reverse)
	mux.HandleFunc("/history", historyHandler.History)
	mux.HandleFunc("/history/last", historyHandler.Last)
	mux.HandleFunc("/favorites", favHandler.Collection)
	mux.HandleFunc("/favorites/route", favHandler.Route)
	mux.HandleFunc("/recommendations", recHandler.List)
	mux.HandleFunc("/recommendations/route", recHandler.Route)

	return loggingMiddleware(mux)
}

// jsonFieldName makes validation errors report the JSON key of a field.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
