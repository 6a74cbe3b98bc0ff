package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/models"
	"github.com/reeltaste/reeltaste-engine/pkg/services"
)

// AddWatchlistRequest is the request body for saving a title for later.
type AddWatchlistRequest struct {
	Title                string  `json:"title"`
	MediaType            string  `json:"mediaType"`
	Year                 *int    `json:"year"`
	Priority             int     `json:"priority"`
	RecommendationReason *string `json:"recommendationReason"`
}

// UpdatePriorityRequest is the request body for reordering a watchlist item.
type UpdatePriorityRequest struct {
	Priority int `json:"priority"`
}

// WatchlistHandler handles watchlist HTTP requests.
type WatchlistHandler struct {
	profileService *services.ProfileService
	logger         *zap.Logger
}

// NewWatchlistHandler creates a new watchlist handler.
func NewWatchlistHandler(profileService *services.ProfileService, logger *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// RegisterRoutes registers the watchlist handler's routes on the given mux.
func (h *WatchlistHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users/{userId}/watchlist", h.List)
	mux.HandleFunc("POST /api/users/{userId}/watchlist", h.Add)
	mux.HandleFunc("DELETE /api/watchlist/{id}", h.Delete)
	mux.HandleFunc("PATCH /api/watchlist/{id}/priority", h.UpdatePriority)
}

// List handles GET /api/users/{userId}/watchlist
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	items, err := h.profileService.ListWatchlist(r.Context(), userID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

// Add handles POST /api/users/{userId}/watchlist
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	var req AddWatchlistRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if !models.IsValidMediaType(req.MediaType) {
		ErrorResponse(w, http.StatusBadRequest, "mediaType must be film or tv")
		return
	}

	item, err := h.profileService.AddWatchlistItem(r.Context(), &models.WatchlistItem{
		UserID:               userID,
		Title:                req.Title,
		MediaType:            req.MediaType,
		Year:                 req.Year,
		Priority:             req.Priority,
		RecommendationReason: req.RecommendationReason,
	})
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/watchlist/{id}
func (h *WatchlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.profileService.DeleteWatchlistItem(r.Context(), id); err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// UpdatePriority handles PATCH /api/watchlist/{id}/priority
func (h *WatchlistHandler) UpdatePriority(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdatePriorityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.profileService.UpdateWatchlistPriority(r.Context(), id, req.Priority); err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
