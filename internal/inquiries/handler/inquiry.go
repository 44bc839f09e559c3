package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tripora/internal/inquiries/service"
	apperrors "tripora/pkg/errors"
	httputil "tripora/pkg/http"
	"tripora/pkg/logger"
	"tripora/pkg/middleware"
	"tripora/pkg/model"
)

type InquiryHandler struct {
	service service.InquiryService
	auth    *middleware.Authenticator
	log     *logger.Logger
}

func NewInquiryHandler(service service.InquiryService, auth *middleware.Authenticator, log *logger.Logger) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

// Create handles the public contact form.
func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var inquiry model.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&inquiry); err != nil {
		h.writeError(w, "Create", apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.service.Create(r.Context(), &inquiry); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, "Inquiry submitted successfully", inquiry); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, err := httputil.ExtractPageLimit(r)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	inquiries, total, err := h.service.GetAll(r.Context(), limit, httputil.Offset(page, limit))
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WritePaginated(w, inquiries, page, limit, total); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "error", err)
	}
}

func (h *InquiryHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	inquiry, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, "", inquiry); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *InquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.InquiryStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeError(w, "UpdateStatus", apperrors.InvalidInput("Invalid request body"))
		return
	}

	inquiry, err := h.service.UpdateStatus(r.Context(), ps.ByName("id"), update.Status)
	if err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	if err := httputil.WriteSuccess(w, "Inquiry status updated successfully", inquiry); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateStatus", "error", err)
	}
}

func (h *InquiryHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *InquiryHandler) RegisterRoutes(router *httprouter.Router) {
	// /api/contact is an alias kept for the public site's contact form
	router.POST("/api/inquiries", h.Create)
	router.POST("/api/contact", h.Create)
	router.GET("/api/admin/inquiries", h.auth.Wrap(h.List))
	router.GET("/api/admin/inquiries/:id", h.auth.Wrap(h.GetByID))
	router.PUT("/api/admin/inquiries/:id", h.auth.Wrap(h.UpdateStatus))
}
