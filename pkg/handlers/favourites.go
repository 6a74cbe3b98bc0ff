package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/models"
	"github.com/reeltaste/reeltaste-engine/pkg/services"
)

// AddFavouriteRequest is the request body for adding a favourite title.
type AddFavouriteRequest struct {
	Title     string  `json:"title"`
	MediaType string  `json:"mediaType"`
	Year      *int    `json:"year"`
	Reason    *string `json:"reason"`
}

// FavouritesHandler handles favourite title HTTP requests.
type FavouritesHandler struct {
	profileService *services.ProfileService
	logger         *zap.Logger
}

// NewFavouritesHandler creates a new favourites handler.
func NewFavouritesHandler(profileService *services.ProfileService, logger *zap.Logger) *FavouritesHandler {
	return &FavouritesHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// RegisterRoutes registers the favourites handler's routes on the given mux.
func (h *FavouritesHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users/{userId}/favourites", h.List)
	mux.HandleFunc("POST /api/users/{userId}/favourites", h.Add)
	mux.HandleFunc("DELETE /api/favourites/{id}", h.Delete)
}

// List handles GET /api/users/{userId}/favourites
func (h *FavouritesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	favs, err := h.profileService.ListFavourites(r.Context(), userID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, favs)
}

// Add handles POST /api/users/{userId}/favourites
func (h *FavouritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	var req AddFavouriteRequest
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

	fav, err := h.profileService.AddFavourite(r.Context(), &models.FavouriteTitle{
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
	WriteJSON(w, http.StatusOK, fav)
}

// Delete handles DELETE /api/favourites/{id}
func (h *FavouritesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.profileService.DeleteFavourite(r.Context(), id); err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
