package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"tripora/internal/gallery/service"
	"tripora/pkg/config"
	apperrors "tripora/pkg/errors"
	httputil "tripora/pkg/http"
	"tripora/pkg/logger"
	"tripora/pkg/middleware"
	"tripora/pkg/model"
)

type GalleryHandler struct {
	service service.GalleryService
	auth    *middleware.Authenticator
	cfg     *config.Config
	log     *logger.Logger
}

func NewGalleryHandler(service service.GalleryService, auth *middleware.Authenticator, cfg *config.Config) *GalleryHandler {
	return &GalleryHandler{
		service: service,
		auth:    auth,
		cfg:     cfg,
		log:     cfg.Log,
	}
}

func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, err := httputil.ExtractPageLimit(r)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	category := r.URL.Query().Get("category")
	images, total, err := h.service.GetAll(r.Context(), category, limit, httputil.Offset(page, limit))
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WritePaginated(w, images, page, limit, total); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "error", err)
	}
}

func (h *GalleryHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	image, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, "", image); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

// Upload accepts a multipart form with an "image" file part plus optional
// category, caption, destination and order fields.
func (h *GalleryHandler) Upload(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		h.writeError(w, "Upload", apperrors.InvalidInput("Invalid or oversized multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("image")
	if err != nil {
		h.writeError(w, "Upload", apperrors.ValidationFailed([]apperrors.FieldError{
			{Field: "image", Message: "image file is required"},
		}))
		return
	}
	defer file.Close()

	order := 0
	if raw := r.FormValue("order"); raw != "" {
		order, err = strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, "Upload", apperrors.ValidationFailed([]apperrors.FieldError{
				{Field: "order", Message: "order must be an integer"},
			}))
			return
		}
	}

	upload := &service.Upload{
		File:        file,
		Category:    r.FormValue("category"),
		Caption:     r.FormValue("caption"),
		Destination: r.FormValue("destination"),
		Order:       order,
	}

	image, err := h.service.Upload(r.Context(), upload)
	if err != nil {
		h.writeError(w, "Upload", err)
		return
	}

	if err := httputil.WriteCreated(w, "Image uploaded successfully", image); err != nil {
		h.log.Error("failed to write created response", "handler", "Upload", "error", err)
	}
}

func (h *GalleryHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.GalleryImageUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.writeError(w, "Update", apperrors.InvalidInput("Invalid request body"))
		return
	}

	image, err := h.service.Update(r.Context(), ps.ByName("id"), &updates)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, "Gallery image updated successfully", image); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "error", err)
	}
}

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	if err := httputil.WriteSuccess(w, "Gallery image deleted successfully", nil); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "error", err)
	}
}

func (h *GalleryHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *GalleryHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/gallery", h.List)
	router.GET("/api/gallery/:id", h.GetByID)
	router.POST("/api/gallery", h.auth.Wrap(h.Upload))
	router.PUT("/api/gallery/:id", h.auth.Wrap(h.Update))
	router.DELETE("/api/gallery/:id", h.auth.Wrap(h.Delete))
}
