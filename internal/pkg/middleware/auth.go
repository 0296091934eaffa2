package middleware

import (
	"context"
	"net/http"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/token"
)

// ContextKey é um tipo não exportado para evitar colisão com outras chaves de contexto.
type ContextKey int

const (
	PrincipalKey ContextKey = iota
)

// TokenVerifier define o contrato de validação necessário para a autorização.
type TokenVerifier interface {
	VerifyToken(tokenString string) (domain.Principal, error)
}

// Authorizer valida o header Authorization de uma requisição.
type Authorizer struct {
	tokens TokenVerifier
}

// NewAuthorizer cria o Authorizer a partir do serviço de tokens.
func NewAuthorizer(tokens TokenVerifier) *Authorizer {
	return &Authorizer{tokens: tokens}
}

// Authorize exige "Authorization: Bearer <token>" e devolve a identidade do token.
// Header ausente ou fora do formato resulta em MISSING_TOKEN; falha de verificação em INVALID_TOKEN.
func (a *Authorizer) Authorize(r *http.Request) (domain.Principal, error) {
	tokenString, err := token.ExtractBearer(r.Header.Get("Authorization"))
	if err != nil {
		return domain.Principal{}, apperror.NewMissingTokenError()
	}

	principal, err := a.tokens.VerifyToken(tokenString)
	if err != nil {
		return domain.Principal{}, apperror.NewInvalidTokenError()
	}
	return principal, nil
}

// WithPrincipal anexa a identidade autenticada ao contexto.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// PrincipalFromContext é uma função utilitária para extrair a identidade no handler.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(domain.Principal)
	return p, ok
}
