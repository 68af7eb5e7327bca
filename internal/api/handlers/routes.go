package handlers

import (
	"net/http"
	"route-planner-service/internal/api/dto"
	"route-planner-service/internal/services"

	"github.com/go-playground/validator/v10"
)

// RouteHandler exposes geocoding, route computation and reversal.
type RouteHandler struct {
	Routes   *services.RouteService
	Validate *validator.Validate
}

// Geocode resolves ?q= to a single location.
func (h *RouteHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}

	loc, err := h.Routes.Resolve(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewLocationResponse(loc))
}

func (h *RouteHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}

	var req dto.RouteRequest
	if !decodeBody(w, r, h.Validate, &req) {
		return
	}

	vehicle, err := parseVehicle(req.Vehicle)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	res, err := h.Routes.ComputeRoute(r.Context(), req.Origin, req.Destination, vehicle)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewRouteResponse(res))
}

// Reverse recomputes the last recorded route in the opposite direction.
func (h *RouteHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}

	res, err := h.Routes.ReverseLastRoute(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewRouteResponse(res))
}
