package handlers

import (
	"net/http"
	"route-planner-service/internal/api/dto"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/services"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FavoriteHandler struct {
	Favorites *services.FavoriteService
	Validate  *validator.Validate
}

// Collection lists (GET), adds (POST) or removes (DELETE ?index=N) favorites.
func (h *FavoriteHandler) Collection(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodPost, http.MethodDelete) {
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.add(w, r)
	case http.MethodDelete:
		h.remove(w, r)
	default:
		h.list(w, r)
	}
}

func (h *FavoriteHandler) list(w http.ResponseWriter, r *http.Request) {
	favs, err := h.Favorites.List(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	res := dto.ListFavoritesResponse{Favorites: make([]dto.FavoriteResponse, 0, len(favs))}
	for i, f := range favs {
		res.Favorites = append(res.Favorites, dto.FavoriteResponse{Index: i, Name: f.Name, Location: f.Location})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *FavoriteHandler) add(w http.ResponseWriter, r *http.Request) {
	var req dto.FavoriteRequest
	if !decodeBody(w, r, h.Validate, &req) {
		return
	}

	fav, err := h.Favorites.Add(r.Context(), req.Name, req.Location)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	// Favorites are append-only, so the new entry is last.
	favs, err := h.Favorites.List(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.FavoriteResponse{Index: len(favs) - 1, Name: fav.Name, Location: fav.Location})
}

func (h *FavoriteHandler) remove(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("index")
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "index must be an integer")
		return
	}

	fav, err := h.Favorites.Remove(r.Context(), index)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.FavoriteResponse{Index: index, Name: fav.Name, Location: fav.Location})
}

// Route routes from a favorite to another favorite or to free text.
func (h *FavoriteHandler) Route(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}

	var req dto.FavoriteRouteRequest
	if !decodeBody(w, r, h.Validate, &req) {
		return
	}

	hasDest := strings.TrimSpace(req.Destination) != ""
	if (req.EndIndex == nil) == !hasDest {
		writeError(w, r, http.StatusBadRequest, "exactly one of end_index or destination is required")
		return
	}

	vehicle, err := parseVehicle(req.Vehicle)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	var res domain.RouteResult
	if req.EndIndex != nil {
		res, err = h.Favorites.RouteBetween(r.Context(), *req.StartIndex, *req.EndIndex, vehicle)
	} else {
		res, err = h.Favorites.RouteFrom(r.Context(), *req.StartIndex, req.Destination, vehicle)
	}
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewRouteResponse(res))
}
