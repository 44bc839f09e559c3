package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"tripora/internal/packages/service"
	apperrors "tripora/pkg/errors"
	httputil "tripora/pkg/http"
	"tripora/pkg/logger"
	"tripora/pkg/middleware"
	"tripora/pkg/model"
)

type PackageHandler struct {
	service service.PackageService
	auth    *middleware.Authenticator
	log     *logger.Logger
}

func NewPackageHandler(service service.PackageService, auth *middleware.Authenticator, log *logger.Logger) *PackageHandler {
	return &PackageHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, err := httputil.ExtractPageLimit(r)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	filter, err := extractPackageFilter(r)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	packages, total, err := h.service.GetAll(r.Context(), filter, limit, httputil.Offset(page, limit))
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WritePaginated(w, packages, page, limit, total); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "error", err)
	}
}

func (h *PackageHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	pkg, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, "", pkg); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var pkg model.Package
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		h.writeError(w, "Create", apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.service.Create(r.Context(), &pkg); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, "Package created successfully", pkg); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *PackageHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.PackageUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.writeError(w, "Update", apperrors.InvalidInput("Invalid request body"))
		return
	}

	pkg, err := h.service.Update(r.Context(), ps.ByName("id"), &updates)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, "Package updated successfully", pkg); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "error", err)
	}
}

func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	if err := httputil.WriteSuccess(w, "Package deleted successfully", nil); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "error", err)
	}
}

func (h *PackageHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func extractPackageFilter(r *http.Request) (*model.PackageFilter, error) {
	query := r.URL.Query()
	filter := &model.PackageFilter{
		Destination: query.Get("destination"),
	}

	if s := query.Get("minPrice"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, apperrors.InvalidInput("invalid minPrice parameter: " + s)
		}
		filter.MinPrice = &v
	}
	if s := query.Get("maxPrice"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, apperrors.InvalidInput("invalid maxPrice parameter: " + s)
		}
		filter.MaxPrice = &v
	}
	if s := query.Get("minDuration"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, apperrors.InvalidInput("invalid minDuration parameter: " + s)
		}
		filter.MinDuration = &v
	}
	if s := query.Get("maxDuration"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, apperrors.InvalidInput("invalid maxDuration parameter: " + s)
		}
		filter.MaxDuration = &v
	}
	if s := query.Get("featured"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, apperrors.InvalidInput("invalid featured parameter: " + s)
		}
		filter.Featured = &v
	}

	return filter, nil
}

func (h *PackageHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/packages", h.List)
	router.GET("/api/packages/:id", h.GetByID)
	router.POST("/api/packages", h.auth.Wrap(h.Create))
	router.PUT("/api/packages/:id", h.auth.Wrap(h.Update))
	router.DELETE("/api/packages/:id", h.auth.Wrap(h.Delete))
}
