package categoryservice

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
)

// CategoryRepository define o contrato que o Serviço de Categorias espera da camada de Persistência.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (domain.Category, error)
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	Update(ctx context.Context, category domain.Category) (domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// Service implementa as regras de negócio de categorias.
type Service struct {
	repo   CategoryRepository
	logger logger.Logger
	now    func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Categorias.
func NewService(repo CategoryRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func notFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Category %s not found", id))
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].CreatedAt.After(categories[j].CreatedAt)
	})
	return categories, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Category, error) {
	if !domain.IsValidID(id) {
		return domain.Category{}, notFound(id)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in domain.CategoryInput) (domain.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Category{}, apperror.NewValidationError("name is required")
	}

	now := s.now().UTC().Truncate(time.Microsecond)
	return s.repo.Create(ctx, domain.Category{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *Service) Update(ctx context.Context, id string, patch domain.CategoryPatch) (domain.Category, error) {
	if !domain.IsValidID(id) {
		return domain.Category{}, notFound(id)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.Category{}, apperror.NewValidationError("name must not be empty")
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}
	patch.Apply(&current)
	current.UpdatedAt = domain.NextUpdatedAt(current.UpdatedAt, s.now())
	return s.repo.Update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !domain.IsValidID(id) {
		return notFound(id)
	}
	return s.repo.Delete(ctx, id)
}
