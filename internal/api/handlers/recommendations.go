package handlers

import (
	"net/http"
	"route-planner-service/internal/api/dto"
	"route-planner-service/internal/services"

	"github.com/go-playground/validator/v10"
)

type RecommendationHandler struct {
	Recommendations *services.RecommendationService
	Validate        *validator.Validate
}

func (h *RecommendationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}

	cities := h.Recommendations.Cities()
	res := dto.ListCitiesResponse{Cities: make([]dto.CityResponse, 0, len(cities))}
	for _, c := range cities {
		res.Cities = append(res.Cities, dto.CityResponse{Name: c.Name, Spots: c.Spots})
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Route routes from origin to a recommended spot.
func (h *RecommendationHandler) Route(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}

	var req dto.RecommendationRouteRequest
	if !decodeBody(w, r, h.Validate, &req) {
		return
	}

	vehicle, err := parseVehicle(req.Vehicle)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	res, err := h.Recommendations.RouteTo(r.Context(), req.Origin, req.City, *req.SpotIndex, vehicle)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewRouteResponse(res))
}
