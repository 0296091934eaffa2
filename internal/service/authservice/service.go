package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/pkg/metrics"
)

// Credencial semeada quando a tabela de administradores está vazia.
// Deve ser trocada em produção.
const (
	DefaultUsername = "admin"
	DefaultEmail    = "admin@example.com"
	DefaultPassword = "admin123"
)

// CredentialRepository define as leituras e escritas que a autenticação precisa.
type CredentialRepository interface {
	FindByUsername(ctx context.Context, username string) (domain.Admin, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, admin domain.Admin) (domain.Admin, error)
}

// PasswordHasher gera e confere hashes de senha.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer emite o token de acesso para uma identidade.
type TokenIssuer interface {
	IssueToken(p domain.Principal) (string, error)
}

// Service implementa login, identidade atual e bootstrap da conta padrão.
type Service struct {
	repo   CredentialRepository
	hasher PasswordHasher
	tokens TokenIssuer
	logger logger.Logger

	// dummyHash é comparado quando o usuário não existe, para que o tempo de
	// resposta não revele quais usernames estão cadastrados.
	dummyHash string
}

// NewService cria e retorna uma nova instância do Serviço de Autenticação.
func NewService(repo CredentialRepository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Logger) *Service {
	dummy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		logger.Warn("Falha ao gerar hash de referência para o login.", map[string]interface{}{"error": err.Error()})
	}
	return &Service{repo: repo, hasher: hasher, tokens: tokens, logger: logger, dummyHash: dummy}
}

// Login troca usuário e senha por um token. Usuário inexistente e senha incorreta
// devolvem exatamente o mesmo erro.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResult, error) {
	admin, err := s.repo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		var nf *apperror.NotFoundError
		if !errors.As(err, &nf) {
			return domain.LoginResult{}, err
		}
		s.hasher.Verify(req.Password, s.dummyHash)
		metrics.ObserveLogin("failure")
		s.logger.Info("Tentativa de login rejeitada.", map[string]interface{}{"username": req.Username})
		return domain.LoginResult{}, apperror.NewInvalidCredentialsError()
	}

	if req.Password == "" || !s.hasher.Verify(req.Password, admin.PasswordHash) {
		metrics.ObserveLogin("failure")
		s.logger.Info("Tentativa de login rejeitada.", map[string]interface{}{"username": req.Username})
		return domain.LoginResult{}, apperror.NewInvalidCredentialsError()
	}

	principal := admin.Principal()
	token, err := s.tokens.IssueToken(principal)
	if err != nil {
		return domain.LoginResult{}, apperror.NewInternalError("Falha ao emitir token", err)
	}

	metrics.ObserveLogin("success")
	s.logger.Info("Login realizado.", map[string]interface{}{"id": principal.ID, "username": principal.Username})
	return domain.LoginResult{Token: token, User: principal}, nil
}

// Me devolve a identidade do token já verificado.
func (s *Service) Me(ctx context.Context, p domain.Principal) (domain.Principal, error) {
	if p.ID == "" {
		return domain.Principal{}, apperror.NewInvalidTokenError()
	}
	return p, nil
}

// EnsureBootstrapped cria a conta padrão quando não existe nenhuma. É idempotente:
// só age com a tabela vazia. Se o banco estiver inacessível ou sem schema, loga as
// instruções de provisionamento e devolve o erro.
func (s *Service) EnsureBootstrapped(ctx context.Context) (bool, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Warn("Tabela de administradores indisponível; provisionamento manual necessário.", map[string]interface{}{
			"error":        err.Error(),
			"instructions": strings.Join(SetupInstructions().Instructions, "\n"),
		})
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	hash, err := s.hasher.Hash(DefaultPassword)
	if err != nil {
		return false, apperror.NewInternalError("Falha ao gerar hash da senha padrão", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err = s.repo.Create(ctx, domain.Admin{
		ID:           uuid.New().String(),
		Username:     DefaultUsername,
		Email:        DefaultEmail,
		PasswordHash: hash,
		Role:         domain.RoleSuperAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		var ve *apperror.ValidationError
		if errors.As(err, &ve) {
			// Outra instância semeou a conta entre o Count e o Create.
			return false, nil
		}
		s.logger.Error("Falha ao criar administrador padrão.", err)
		return false, err
	}

	s.logger.Warn("Administrador padrão criado; troque a senha.", map[string]interface{}{"username": DefaultUsername})
	return true, nil
}
