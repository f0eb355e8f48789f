package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	assignmentcreate "secret-santa-service/internal/http/handler/assignment_create"
	assignmentexport "secret-santa-service/internal/http/handler/assignment_export"
	"secret-santa-service/internal/http/handler/common"
	participantsvalidate "secret-santa-service/internal/http/handler/participants_validate"
	"secret-santa-service/internal/http/middleware"
	"secret-santa-service/internal/http/swagger"
	"secret-santa-service/internal/service"
)

// Handler агрегирует HTTP-эндпоинты.
type Handler struct {
	service        *service.Service
	swaggerSpec    []byte
	uploadMaxBytes int64
}

func New(service *service.Service, spec []byte, uploadMaxBytes int64) *Handler {
	return &Handler{service: service, swaggerSpec: spec, uploadMaxBytes: uploadMaxBytes}
}

// Router возвращает готовый chi.Router со всеми зарегистрированными маршрутами и middleware.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.PanicMiddleware)
	r.Use(middleware.LoggerMiddleware)
	r.Use(middleware.MetricsMiddleware)
	swagger.RegisterRoutes(r, h.swaggerSpec)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := h.service.HealthCheck(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "health check failed", "error", err)
			common.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}
		common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	h.registerAssignmentRoutes(r)
	h.registerParticipantRoutes(r)

	return r
}

func (h *Handler) registerAssignmentRoutes(r chi.Router) {
	r.Route("/assignments", func(router chi.Router) {
		assignmentcreate.New(h.service).Register(router)
		assignmentexport.New(h.service, h.uploadMaxBytes).Register(router)
	})
}

func (h *Handler) registerParticipantRoutes(r chi.Router) {
	r.Route("/participants", func(router chi.Router) {
		participantsvalidate.New(h.service, h.uploadMaxBytes).Register(router)
	})
}
