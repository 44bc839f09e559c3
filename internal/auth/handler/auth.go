package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tripora/internal/auth/service"
	apperrors "tripora/pkg/errors"
	httputil "tripora/pkg/http"
	"tripora/pkg/logger"
	"tripora/pkg/middleware"
	"tripora/pkg/model"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type AuthHandler struct {
	service service.AuthService
	auth    *middleware.Authenticator
	log     *logger.Logger
}

func NewAuthHandler(service service.AuthService, auth *middleware.Authenticator, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Login", apperrors.InvalidInput("Invalid request body"))
		return
	}

	token, user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, "Login", err)
		return
	}

	if err := httputil.WriteSuccess(w, "Login successful", loginResponse{Token: token, User: user}); err != nil {
		h.log.Error("failed to write success response", "handler", "Login", "error", err)
	}
}

// Logout is a stateless acknowledgement. There is no revocation store, the
// client discards its token and the token ages out on its own.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if identity, ok := middleware.IdentityFromContext(r.Context()); ok {
		h.log.Info("User logged out", "user_id", identity.UserID)
	}

	if err := httputil.WriteSuccess(w, "Logged out successfully", nil); err != nil {
		h.log.Error("failed to write success response", "handler", "Logout", "error", err)
	}
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, "Me", apperrors.AuthRequired("Authentication required"))
		return
	}

	user, err := h.service.Me(r.Context(), identity.UserID)
	if err != nil {
		h.writeError(w, "Me", err)
		return
	}

	if err := httputil.WriteSuccess(w, "", user); err != nil {
		h.log.Error("failed to write success response", "handler", "Me", "error", err)
	}
}

func (h *AuthHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/auth/login", h.Login)
	router.POST("/api/auth/logout", h.auth.Wrap(h.Logout))
	router.GET("/api/auth/me", h.auth.Wrap(h.Me))
}
