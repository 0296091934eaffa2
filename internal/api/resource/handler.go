// Package resource implementa os handlers CRUD compartilhados por todos os tipos
// de recurso do back-office (sellers, categories, events, admins...).
package resource

import (
	"context"
	"net/http"

	"backoffice/internal/api/respond"
	"backoffice/internal/domain"
	"backoffice/internal/pkg/logger"
)

// Service é o contrato CRUD que cada serviço de recurso satisfaz.
// T é o registro persistido, C o DTO de criação e U o DTO de patch.
type Service[T, C, U any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, in C) (T, error)
	Update(ctx context.Context, id string, patch U) (T, error)
	Delete(ctx context.Context, id string) error
}

// Handler expõe um Service como handlers HTTP. O id já vem extraído pelo dispatcher.
type Handler[T, C, U any] struct {
	Service Service[T, C, U]
	Logger  logger.Logger
}

// NewHandler cria um Handler genérico para o serviço informado.
func NewHandler[T, C, U any](svc Service[T, C, U], log logger.Logger) *Handler[T, C, U] {
	return &Handler[T, C, U]{Service: svc, Logger: log}
}

// List responde com o array completo, já ordenado pelo serviço.
func (h *Handler[T, C, U]) List(w http.ResponseWriter, r *http.Request, _ string) {
	items, err := h.Service.List(r.Context())
	respond.Handle(w, r, h.Logger, items, err, http.StatusOK)
}

// Get responde com um único registro ou 404.
func (h *Handler[T, C, U]) Get(w http.ResponseWriter, r *http.Request, id string) {
	item, err := h.Service.Get(r.Context(), id)
	respond.Handle(w, r, h.Logger, item, err, http.StatusOK)
}

// Create decodifica o DTO de criação e devolve o registro persistido (201).
func (h *Handler[T, C, U]) Create(w http.ResponseWriter, r *http.Request, _ string) {
	var in C
	if err := respond.DecodeJSON(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	item, err := h.Service.Create(r.Context(), in)
	respond.Handle(w, r, h.Logger, item, err, http.StatusCreated)
}

// Update aplica o patch parcial; campos ausentes no JSON ficam intocados.
func (h *Handler[T, C, U]) Update(w http.ResponseWriter, r *http.Request, id string) {
	var patch U
	if err := respond.DecodeJSON(r, &patch); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	item, err := h.Service.Update(r.Context(), id, patch)
	respond.Handle(w, r, h.Logger, item, err, http.StatusOK)
}

// Delete responde {"success": true}.
func (h *Handler[T, C, U]) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Service.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, domain.SuccessResponse{Success: true})
}

// ListFunc adapta uma função de listagem (ex.: ledger de saldos) para o formato
// de handler do dispatcher.
func ListFunc[T any](list func(ctx context.Context) ([]T, error), log logger.Logger) func(http.ResponseWriter, *http.Request, string) {
	return func(w http.ResponseWriter, r *http.Request, _ string) {
		items, err := list(r.Context())
		respond.Handle(w, r, log, items, err, http.StatusOK)
	}
}
