package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/auth"
	"github.com/reeltaste/reeltaste-engine/pkg/services"
)

// CredentialsRequest is the request body for register, login and link.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler handles session lifecycle HTTP requests.
type AuthHandler struct {
	authService *services.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// RegisterRoutes registers the auth handler's routes on the given mux.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("POST /api/auth/link", h.Link)
	mux.HandleFunc("POST /api/auth/anonymous", h.Anonymous)
	mux.HandleFunc("GET /api/auth/me", h.Me)
}

// validateCredentials checks the shared email/password rules. On failure it
// writes a 400 response and returns false.
func validateCredentials(w http.ResponseWriter, req *CredentialsRequest) bool {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		ErrorResponse(w, http.StatusBadRequest, "email is required")
		return false
	}
	if len(req.Password) < auth.MinPasswordLength {
		ErrorResponse(w, http.StatusBadRequest, "password must be at least 6 characters")
		return false
	}
	return true
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateCredentials(w, &req) {
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password)
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

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
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

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := auth.ClearSession(w, r); err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Link handles POST /api/auth/link
// Upgrades the session's anonymous user in place, keeping its id and data.
func (h *AuthHandler) Link(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		ErrorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateCredentials(w, &req) {
		return
	}

	user, err := h.authService.Link(r.Context(), userID, req.Email, req.Password)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// Anonymous handles POST /api/auth/anonymous
func (h *AuthHandler) Anonymous(w http.ResponseWriter, r *http.Request) {
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

// Me handles GET /api/auth/me
// Returns {"user": null} rather than an error when there is no session, so
// the UI can probe auth state without special-casing a 401.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		WriteJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		// Stale session cookie for a deleted user.
		auth.ClearSession(w, r)
		WriteJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
