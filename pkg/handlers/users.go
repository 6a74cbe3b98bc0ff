package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/auth"
	"github.com/reeltaste/reeltaste-engine/pkg/services"
)

// UsersHandler handles user account HTTP requests.
type UsersHandler struct {
	authService    *services.AuthService
	profileService *services.ProfileService
	logger         *zap.Logger
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(authService *services.AuthService, profileService *services.ProfileService, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{
		authService:    authService,
		profileService: profileService,
		logger:         logger,
	}
}

// RegisterRoutes registers the users handler's routes on the given mux.
func (h *UsersHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/users", h.Create)
	mux.HandleFunc("GET /api/users/{id}", h.Get)
	mux.HandleFunc("POST /api/users/{id}/complete-onboarding", h.CompleteOnboarding)
	mux.HandleFunc("GET /api/users/{id}/profile", h.GetProfile)
}

// Create handles POST /api/users
// Legacy anonymous bootstrap, kept for older UI builds. New clients use
// POST /api/auth/anonymous.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.CreateAnonymous(r.Context())
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := auth.SetSessionUser(w, r, user.ID); err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// Get handles GET /api/users/{id}
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.authService.GetUser(r.Context(), id)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// CompleteOnboarding handles POST /api/users/{id}/complete-onboarding
func (h *UsersHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.profileService.CompleteOnboarding(r.Context(), id); err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	user, err := h.authService.GetUser(r.Context(), id)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// GetProfile handles GET /api/users/{id}/profile
func (h *UsersHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), id)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}
