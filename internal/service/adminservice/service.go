package adminservice

import (
	"context"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
)

// AdminRepository define o contrato de persistência das contas administrativas.
type AdminRepository interface {
	List(ctx context.Context) ([]domain.Admin, error)
	FindByID(ctx context.Context, id string) (domain.Admin, error)
	Create(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	Update(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	Delete(ctx context.Context, id string) error
}

// PasswordHasher gera o hash da senha antes de persistir.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// Service gerencia as contas administrativas. Senhas nunca saem do serviço em claro
// e o hash nunca é serializado (domain.Admin omite o campo no JSON).
type Service struct {
	repo   AdminRepository
	hasher PasswordHasher
	logger logger.Logger
	now    func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Administradores.
func NewService(repo AdminRepository, hasher PasswordHasher, logger logger.Logger) *Service {
	return &Service{repo: repo, hasher: hasher, logger: logger, now: time.Now}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func notFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Admin %s not found", id))
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return apperror.NewValidationError("email is invalid")
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Admin, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(admins, func(i, j int) bool {
		return admins[i].CreatedAt.After(admins[j].CreatedAt)
	})
	return admins, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Admin, error) {
	if !domain.IsValidID(id) {
		return domain.Admin{}, notFound(id)
	}
	return s.repo.FindByID(ctx, id)
}

// Create valida os dados, gera o hash da senha e persiste a conta. O papel padrão é admin.
func (s *Service) Create(ctx context.Context, in domain.AdminInput) (domain.Admin, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return domain.Admin{}, apperror.NewValidationError("username is required")
	}
	if err := validateEmail(in.Email); err != nil {
		return domain.Admin{}, err
	}
	if in.Password == "" {
		return domain.Admin{}, apperror.NewValidationError("password is required")
	}
	role := in.Role
	if role == "" {
		role = domain.RoleAdmin
	}
	if !role.Valid() {
		return domain.Admin{}, apperror.NewValidationError("role must be one of superadmin, admin, viewer")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error("Falha ao gerar hash da senha.", err)
		return domain.Admin{}, apperror.NewValidationError("password could not be accepted")
	}

	now := s.now().UTC().Truncate(time.Microsecond)
	created, err := s.repo.Create(ctx, domain.Admin{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return domain.Admin{}, err
	}
	created.PasswordHash = ""
	return created, nil
}

// Update aplica o patch; o hash só é trocado quando uma nova senha é informada.
func (s *Service) Update(ctx context.Context, id string, patch domain.AdminPatch) (domain.Admin, error) {
	if !domain.IsValidID(id) {
		return domain.Admin{}, notFound(id)
	}
	if patch.Username != nil && strings.TrimSpace(*patch.Username) == "" {
		return domain.Admin{}, apperror.NewValidationError("username must not be empty")
	}
	if patch.Email != nil {
		if err := validateEmail(*patch.Email); err != nil {
			return domain.Admin{}, err
		}
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return domain.Admin{}, apperror.NewValidationError("role must be one of superadmin, admin, viewer")
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Admin{}, err
	}

	if patch.Username != nil {
		current.Username = strings.TrimSpace(*patch.Username)
	}
	if patch.Email != nil {
		current.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Role != nil {
		current.Role = *patch.Role
	}
	// Hash vazio preserva a senha atual no repositório.
	current.PasswordHash = ""
	if patch.Password != nil && *patch.Password != "" {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			s.logger.Error("Falha ao gerar hash da senha.", err)
			return domain.Admin{}, apperror.NewValidationError("password could not be accepted")
		}
		current.PasswordHash = hash
	}
	current.UpdatedAt = domain.NextUpdatedAt(current.UpdatedAt, s.now())

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return domain.Admin{}, err
	}
	updated.PasswordHash = ""
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !domain.IsValidID(id) {
		return notFound(id)
	}
	return s.repo.Delete(ctx, id)
}
