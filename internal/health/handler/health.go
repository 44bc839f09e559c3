package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"tripora/pkg/config"
	httputil "tripora/pkg/http"
	"tripora/pkg/logger"
)

const readinessTimeout = 2 * time.Second

type HealthHandler struct {
	cfg *config.Config
	log *logger.Logger
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		cfg: cfg,
		log: cfg.Log,
	}
}

// Live reports process liveness only.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, "ok", nil); err != nil {
		h.log.Error("failed to write health response", "error", err)
	}
}

// Ready additionally pings the database.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.cfg.Client.Mongo.Ping(ctx, readpref.Primary()); err != nil {
		h.log.Error("Readiness probe failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"success":false,"message":"database unreachable"}`))
		return
	}

	if err := httputil.WriteSuccess(w, "ready", nil); err != nil {
		h.log.Error("failed to write readiness response", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Live)
	router.GET("/ready", h.Ready)
}
