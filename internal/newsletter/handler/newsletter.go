package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tripora/internal/newsletter/service"
	apperrors "tripora/pkg/errors"
	httputil "tripora/pkg/http"
	"tripora/pkg/logger"
	"tripora/pkg/model"
)

type NewsletterHandler struct {
	service service.NewsletterService
	log     *logger.Logger
}

func NewNewsletterHandler(service service.NewsletterService, log *logger.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		service: service,
		log:     log,
	}
}

func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var subscriber model.NewsletterSubscriber
	if err := json.NewDecoder(r.Body).Decode(&subscriber); err != nil {
		h.writeError(w, "Subscribe", apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.service.Subscribe(r.Context(), &subscriber); err != nil {
		h.writeError(w, "Subscribe", err)
		return
	}

	if err := httputil.WriteSuccess(w, "Subscribed to newsletter successfully", nil); err != nil {
		h.log.Error("failed to write success response", "handler", "Subscribe", "error", err)
	}
}

func (h *NewsletterHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *NewsletterHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/newsletter", h.Subscribe)
}
