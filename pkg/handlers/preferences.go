package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/models"
	"github.com/reeltaste/reeltaste-engine/pkg/services"
)

// SetGenreRequest is the request body for setting a genre preference.
type SetGenreRequest struct {
	Genre  string `json:"genre"`
	Rating int    `json:"rating"`
}

// SetMoodRequest is the request body for setting a mood preference.
type SetMoodRequest struct {
	Mood   string `json:"mood"`
	Rating int    `json:"rating"`
}

// AddActorRequest is the request body for adding an actor preference.
type AddActorRequest struct {
	ActorName string `json:"actorName"`
	Rating    int    `json:"rating"`
}

// AddDirectorRequest is the request body for adding a director preference.
type AddDirectorRequest struct {
	DirectorName string `json:"directorName"`
	Rating       int    `json:"rating"`
}

// PreferencesHandler handles genre, mood, actor and director preference
// HTTP requests.
type PreferencesHandler struct {
	profileService *services.ProfileService
	logger         *zap.Logger
}

// NewPreferencesHandler creates a new preferences handler.
func NewPreferencesHandler(profileService *services.ProfileService, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// RegisterRoutes registers the preferences handler's routes on the given mux.
func (h *PreferencesHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users/{userId}/genres", h.ListGenres)
	mux.HandleFunc("POST /api/users/{userId}/genres", h.SetGenre)
	mux.HandleFunc("GET /api/users/{userId}/moods", h.ListMoods)
	mux.HandleFunc("POST /api/users/{userId}/moods", h.SetMood)
	mux.HandleFunc("GET /api/users/{userId}/actors", h.ListActors)
	mux.HandleFunc("POST /api/users/{userId}/actors", h.AddActor)
	mux.HandleFunc("DELETE /api/actors/{id}", h.DeleteActor)
	mux.HandleFunc("GET /api/users/{userId}/directors", h.ListDirectors)
	mux.HandleFunc("POST /api/users/{userId}/directors", h.AddDirector)
	mux.HandleFunc("DELETE /api/directors/{id}", h.DeleteDirector)
}

// ListGenres handles GET /api/users/{userId}/genres
func (h *PreferencesHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	genres, err := h.profileService.ListGenres(r.Context(), userID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, genres)
}

// SetGenre handles POST /api/users/{userId}/genres
// Setting an already-rated genre overwrites its rating.
func (h *PreferencesHandler) SetGenre(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	var req SetGenreRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Genre = strings.TrimSpace(req.Genre)
	if req.Genre == "" {
		ErrorResponse(w, http.StatusBadRequest, "genre is required")
		return
	}
	if !models.IsValidRating(req.Rating) {
		ErrorResponse(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	pref, err := h.profileService.SetGenre(r.Context(), userID, req.Genre, req.Rating)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, pref)
}

// ListMoods handles GET /api/users/{userId}/moods
func (h *PreferencesHandler) ListMoods(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	moods, err := h.profileService.ListMoods(r.Context(), userID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, moods)
}

// SetMood handles POST /api/users/{userId}/moods
func (h *PreferencesHandler) SetMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	var req SetMoodRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Mood = strings.TrimSpace(req.Mood)
	if req.Mood == "" {
		ErrorResponse(w, http.StatusBadRequest, "mood is required")
		return
	}
	if !models.IsValidRating(req.Rating) {
		ErrorResponse(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	pref, err := h.profileService.SetMood(r.Context(), userID, req.Mood, req.Rating)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, pref)
}

// ListActors handles GET /api/users/{userId}/actors
func (h *PreferencesHandler) ListActors(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	actors, err := h.profileService.ListActors(r.Context(), userID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, actors)
}

// AddActor handles POST /api/users/{userId}/actors
func (h *PreferencesHandler) AddActor(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	var req AddActorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ActorName = strings.TrimSpace(req.ActorName)
	if req.ActorName == "" {
		ErrorResponse(w, http.StatusBadRequest, "actorName is required")
		return
	}
	if !models.IsValidRating(req.Rating) {
		ErrorResponse(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	pref, err := h.profileService.AddActor(r.Context(), userID, req.ActorName, req.Rating)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, pref)
}

// DeleteActor handles DELETE /api/actors/{id}
func (h *PreferencesHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.profileService.DeleteActor(r.Context(), id); err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListDirectors handles GET /api/users/{userId}/directors
func (h *PreferencesHandler) ListDirectors(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	directors, err := h.profileService.ListDirectors(r.Context(), userID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, directors)
}

// AddDirector handles POST /api/users/{userId}/directors
func (h *PreferencesHandler) AddDirector(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	var req AddDirectorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.DirectorName = strings.TrimSpace(req.DirectorName)
	if req.DirectorName == "" {
		ErrorResponse(w, http.StatusBadRequest, "directorName is required")
		return
	}
	if !models.IsValidRating(req.Rating) {
		ErrorResponse(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	pref, err := h.profileService.AddDirector(r.Context(), userID, req.DirectorName, req.Rating)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, pref)
}

// DeleteDirector handles DELETE /api/directors/{id}
func (h *PreferencesHandler) DeleteDirector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.profileService.DeleteDirector(r.Context(), id); err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
