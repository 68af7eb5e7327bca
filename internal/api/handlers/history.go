package handlers

import (
	"net/http"
	"route-planner-service/internal/api/dto"
	"route-planner-service/internal/services"
)

type HistoryHandler struct {
	Routes *services.RouteService
}

// History lists (GET) or clears (DELETE) the route history.
func (h *HistoryHandler) History(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodDelete) {
		return
	}

	if r.Method == http.MethodDelete {
		if err := h.Routes.ClearHistory(r.Context()); err != nil {
			writeFailure(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	entries, err := h.Routes.History(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	res := dto.ListHistoryResponse{History: make([]dto.HistoryEntryResponse, 0, len(entries))}
	for _, e := range entries {
		res.History = append(res.History, dto.NewHistoryEntryResponse(e))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *HistoryHandler) Last(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}

	e, err := h.Routes.LastRoute(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewHistoryEntryResponse(e))
}
