package sellerservice

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

// SellerRepository define o contrato que o Serviço de Vendedores espera da camada de Persistência.
type SellerRepository interface {
	List(ctx context.Context) ([]domain.Seller, error)
	FindByID(ctx context.Context, id string) (domain.Seller, error)
	Create(ctx context.Context, seller domain.Seller) (domain.Seller, error)
	Update(ctx context.Context, seller domain.Seller) (domain.Seller, error)
	Delete(ctx context.Context, id string) error
}

// Service implementa as regras de negócio de vendedores.
type Service struct {
	repo   SellerRepository
	logger logger.Logger
	now    func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Vendedores.
func NewService(repo SellerRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// WithClock substitui o relógio usado nos timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func notFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Seller %s not found", id))
}

// List devolve todos os vendedores, mais recentes primeiro, independente da ordem do repositório.
func (s *Service) List(ctx context.Context) ([]domain.Seller, error) {
	sellers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sellers, func(i, j int) bool {
		return sellers[i].CreatedAt.After(sellers[j].CreatedAt)
	})
	return sellers, nil
}

// Get busca um vendedor pelo ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Seller, error) {
	if !domain.IsValidID(id) {
		return domain.Seller{}, notFound(id)
	}
	return s.repo.FindByID(ctx, id)
}

// Create valida e persiste um novo vendedor.
func (s *Service) Create(ctx context.Context, in domain.SellerInput) (domain.Seller, error) {
	s.logger.Debug("Iniciando criação de vendedor no serviço.", map[string]interface{}{"email": in.Email})

	if strings.TrimSpace(in.Name) == "" {
		return domain.Seller{}, apperror.NewValidationError("name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return domain.Seller{}, apperror.NewValidationError("email is required")
	}
	if in.DeliveryFee < 0 {
		return domain.Seller{}, apperror.NewValidationError("delivery_fee must not be negative")
	}

	now := s.now().UTC().Truncate(time.Microsecond)
	seller := domain.Seller{
		ID:                  uuid.New().String(),
		Name:                in.Name,
		Email:               in.Email,
		Phone:               in.Phone,
		StoreName:           in.StoreName,
		StoreAddress:        in.StoreAddress,
		BusinessName:        in.BusinessName,
		IsDeliveryAvailable: in.IsDeliveryAvailable,
		DeliveryFee:         in.DeliveryFee,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return s.repo.Create(ctx, seller)
}

// Update aplica o patch sobre o registro atual; campos ausentes ficam intactos.
func (s *Service) Update(ctx context.Context, id string, patch domain.SellerPatch) (domain.Seller, error) {
	if !domain.IsValidID(id) {
		return domain.Seller{}, notFound(id)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.Seller{}, apperror.NewValidationError("name must not be empty")
	}
	if patch.DeliveryFee != nil && *patch.DeliveryFee < 0 {
		return domain.Seller{}, apperror.NewValidationError("delivery_fee must not be negative")
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Seller{}, err
	}

	patch.Apply(&current)
	current.UpdatedAt = domain.NextUpdatedAt(current.UpdatedAt, s.now())
	return s.repo.Update(ctx, current)
}

// Delete remove um vendedor. IDs inexistentes resultam em NotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !domain.IsValidID(id) {
		return notFound(id)
	}
	return s.repo.Delete(ctx, id)
}
