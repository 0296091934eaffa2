package stats

import (
	"context"
	"net/http"

	"backoffice/internal/api/respond"
	"backoffice/internal/domain"
	"backoffice/internal/pkg/logger"
)

// StatsService define as agregações do painel.
type StatsService interface {
	Stats(ctx context.Context) (domain.Stats, error)
	Analytics(ctx context.Context) (domain.Analytics, error)
}

type Handler struct {
	Service StatsService
	Logger  logger.Logger
}

func NewHandler(svc StatsService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// Stats lida com GET /api/stats.
// @Summary Contagem de sellers, categorias e eventos
// @Tags stats
// @Produce json
// @Success 200 {object} domain.Stats
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request, _ string) {
	s, err := h.Service.Stats(r.Context())
	respond.Handle(w, r, h.Logger, s, err, http.StatusOK)
}

// Analytics lida com GET /api/analytics.
// @Summary Contagens gerais e receita de pedidos recebidos
// @Tags stats
// @Produce json
// @Success 200 {object} domain.Analytics
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /analytics [get]
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request, _ string) {
	a, err := h.Service.Analytics(r.Context())
	respond.Handle(w, r, h.Logger, a, err, http.StatusOK)
}
