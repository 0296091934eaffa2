package auth

import (
	"context"
	"net/http"

	"backoffice/internal/api/respond"
	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/pkg/middleware"
	"backoffice/internal/service/authservice"
)

// AuthService define o contrato de login e identidade.
type AuthService interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResult, error)
	Me(ctx context.Context, p domain.Principal) (domain.Principal, error)
}

// Handler agrupa os handlers de autenticação e provisionamento.
type Handler struct {
	Service AuthService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AuthService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// Login lida com POST /api/auth/login (e o alias /api/login).
// @Summary Autentica um administrador e retorna um JWT
// @Description Usuário inexistente e senha incorreta devolvem a mesma resposta.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Usuário e senha"
// @Success 200 {object} domain.LoginResult
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 500 {object} domain.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ string) {
	var req domain.LoginRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	if req.Username == "" || req.Password == "" {
		respond.Error(w, r, h.Logger, apperror.NewValidationError("Username and password are required"))
		return
	}

	result, err := h.Service.Login(r.Context(), req)
	respond.Handle(w, r, h.Logger, result, err, http.StatusOK)
}

// Me lida com GET /api/auth/me.
// @Summary Identidade do token atual
// @Tags auth
// @Produce json
// @Success 200 {object} domain.MeResponse
// @Failure 401 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request, _ string) {
	p, _ := middleware.PrincipalFromContext(r.Context())
	me, err := h.Service.Me(r.Context(), p)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, domain.MeResponse{User: me})
}

// Setup lida com GET /api/setup. Público: serve justamente para quando não há
// conta com que autenticar.
// @Summary Instruções de provisionamento
// @Tags auth
// @Produce json
// @Success 200 {object} domain.SetupInfo
// @Router /setup [get]
func (h *Handler) Setup(w http.ResponseWriter, r *http.Request, _ string) {
	respond.JSON(w, http.StatusOK, authservice.SetupInstructions())
}
