package handlers

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/models"
	"github.com/reeltaste/reeltaste-engine/pkg/services"
)

// AddHistoryRequest is the request body for recording a watch event.
type AddHistoryRequest struct {
	Title       string     `json:"title"`
	MediaType   string     `json:"mediaType"`
	Year        *int       `json:"year"`
	WatchedDate *time.Time `json:"watchedDate"`
	Rating      *string    `json:"rating"`
	Notes       *string    `json:"notes"`
}

// UpdateRatingRequest is the request body for rating a watched title.
type UpdateRatingRequest struct {
	Rating string `json:"rating"`
}

// HistoryHandler handles watch history HTTP requests.
type HistoryHandler struct {
	profileService *services.ProfileService
	logger         *zap.Logger
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(profileService *services.ProfileService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// RegisterRoutes registers the history handler's routes on the given mux.
func (h *HistoryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users/{userId}/history", h.List)
	mux.HandleFunc("POST /api/users/{userId}/history", h.Add)
	mux.HandleFunc("PATCH /api/history/{id}/rating", h.UpdateRating)
}

// List handles GET /api/users/{userId}/history
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	items, err := h.profileService.ListHistory(r.Context(), userID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

// Add handles POST /api/users/{userId}/history
func (h *HistoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	var req AddHistoryRequest
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
	if req.Rating != nil && !models.IsValidHistoryRating(*req.Rating) {
		ErrorResponse(w, http.StatusBadRequest, "rating must be loved, ok or disliked")
		return
	}

	item := &models.WatchHistoryItem{
		UserID:    userID,
		Title:     req.Title,
		MediaType: req.MediaType,
		Year:      req.Year,
		Rating:    req.Rating,
		Notes:     req.Notes,
	}
	if req.WatchedDate != nil {
		item.WatchedDate = *req.WatchedDate
	}

	created, err := h.profileService.AddHistory(r.Context(), item)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, created)
}

// UpdateRating handles PATCH /api/history/{id}/rating
func (h *HistoryHandler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateRatingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !models.IsValidHistoryRating(req.Rating) {
		ErrorResponse(w, http.StatusBadRequest, "rating must be loved, ok or disliked")
		return
	}

	if err := h.profileService.UpdateHistoryRating(r.Context(), id, req.Rating); err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
