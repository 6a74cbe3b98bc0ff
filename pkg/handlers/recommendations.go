package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/models"
	"github.com/reeltaste/reeltaste-engine/pkg/services"
)

// GenerateRequest is the request body for generating recommendations. The
// free-text request is optional; without it the prompt is built from the
// profile alone.
type GenerateRequest struct {
	Request string `json:"request"`
}

// ParseRequestBody is the request body for intent classification.
type ParseRequestBody struct {
	Request string `json:"request"`
}

// UpdateOutcomeRequest is the request body for recording what the user did
// with a recommendation.
type UpdateOutcomeRequest struct {
	Outcome string `json:"outcome"`
}

// RecommendationsHandler handles recommendation HTTP requests.
type RecommendationsHandler struct {
	recService *services.RecommendationService
	logger     *zap.Logger
}

// NewRecommendationsHandler creates a new recommendations handler.
func NewRecommendationsHandler(recService *services.RecommendationService, logger *zap.Logger) *RecommendationsHandler {
	return &RecommendationsHandler{
		recService: recService,
		logger:     logger,
	}
}

// RegisterRoutes registers the recommendations handler's routes on the given mux.
func (h *RecommendationsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/users/{userId}/recommendations", h.Generate)
	mux.HandleFunc("POST /api/parse-request", h.ParseRequest)
	mux.HandleFunc("GET /api/users/{userId}/recommendation-log", h.ListLog)
	mux.HandleFunc("PATCH /api/recommendation-log/{id}/outcome", h.UpdateOutcome)
}

// Generate handles POST /api/users/{userId}/recommendations
func (h *RecommendationsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	var req GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	recs, err := h.recService.Generate(r.Context(), userID, strings.TrimSpace(req.Request))
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, recs)
}

// ParseRequest handles POST /api/parse-request
func (h *RecommendationsHandler) ParseRequest(w http.ResponseWriter, r *http.Request) {
	var req ParseRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	req.Request = strings.TrimSpace(req.Request)
	if req.Request == "" {
		ErrorResponse(w, http.StatusBadRequest, "request is required")
		return
	}

	parsed, err := h.recService.ParseRequest(r.Context(), req.Request)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, parsed)
}

// ListLog handles GET /api/users/{userId}/recommendation-log
func (h *RecommendationsHandler) ListLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	entries, err := h.recService.ListLog(r.Context(), userID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, entries)
}

// UpdateOutcome handles PATCH /api/recommendation-log/{id}/outcome
func (h *RecommendationsHandler) UpdateOutcome(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateOutcomeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !models.IsValidOutcome(req.Outcome) {
		ErrorResponse(w, http.StatusBadRequest, "invalid outcome")
		return
	}

	if err := h.recService.UpdateOutcome(r.Context(), id, req.Outcome); err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
