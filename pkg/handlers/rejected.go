package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/models"
	"github.com/reeltaste/reeltaste-engine/pkg/services"
)

// AddRejectedRequest is the request body for recording a declined suggestion.
type AddRejectedRequest struct {
	Title     string  `json:"title"`
	MediaType string  `json:"mediaType"`
	Year      *int    `json:"year"`
	Reason    *string `json:"reason"`
}

// RejectedHandler handles rejected item HTTP requests.
type RejectedHandler struct {
	profileService *services.ProfileService
	logger         *zap.Logger
}

// NewRejectedHandler creates a new rejected items handler.
func NewRejectedHandler(profileService *services.ProfileService, logger *zap.Logger) *RejectedHandler {
	return &RejectedHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// RegisterRoutes registers the rejected handler's routes on the given mux.
func (h *RejectedHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users/{userId}/rejected", h.List)
	mux.HandleFunc("POST /api/users/{userId}/rejected", h.Add)
}

// List handles GET /api/users/{userId}/rejected
func (h *RejectedHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	items, err := h.profileService.ListRejected(r.Context(), userID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

// Add handles POST /api/users/{userId}/rejected
func (h *RejectedHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	var req AddRejectedRequest
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

	item, err := h.profileService.AddRejected(r.Context(), &models.RejectedItem{
		UserID:    userID,
		Title:     req.Title,
		MediaType: req.MediaType,
		Year:      req.Year,
		Reason:    req.Reason,
	})
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}
