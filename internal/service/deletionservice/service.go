package deletionservice

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
	"backoffice/internal/service/enrich"
)

// DeletionRequestRepository define o contrato de persistência das solicitações.
type DeletionRequestRepository interface {
	List(ctx context.Context) ([]domain.DeletionRequest, error)
	FindByID(ctx context.Context, id string) (domain.DeletionRequest, error)
	Create(ctx context.Context, req domain.DeletionRequest) (domain.DeletionRequest, error)
	Update(ctx context.Context, req domain.DeletionRequest) (domain.DeletionRequest, error)
	Delete(ctx context.Context, id string) error
}

// Service gerencia as solicitações de exclusão de vendedores.
type Service struct {
	repo    DeletionRequestRepository
	sellers enrich.SummaryFinder
	logger  logger.Logger
	now     func() time.Time
}

// NewService cria o serviço. sellers é usado para anexar o resumo do vendedor.
func NewService(repo DeletionRequestRepository, sellers enrich.SummaryFinder, logger logger.Logger) *Service {
	return &Service{repo: repo, sellers: sellers, logger: logger, now: time.Now}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func notFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Deletion request %s not found", id))
}

// List devolve as solicitações enriquecidas com o vendedor, mais recentes primeiro.
func (s *Service) List(ctx context.Context) ([]domain.DeletionRequest, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})

	ids := make([]string, len(requests))
	for i, r := range requests {
		ids[i] = r.SellerID
	}
	summaries := enrich.SellerSummaries(ctx, s.sellers, s.logger, ids)
	for i := range requests {
		requests[i].Seller = summaries[requests[i].SellerID]
	}
	return requests, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.DeletionRequest, error) {
	if !domain.IsValidID(id) {
		return domain.DeletionRequest{}, notFound(id)
	}
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.DeletionRequest{}, err
	}
	req.Seller = enrich.SellerSummaries(ctx, s.sellers, s.logger, []string{req.SellerID})[req.SellerID]
	return req, nil
}

// Create abre uma solicitação sempre no estado pending.
func (s *Service) Create(ctx context.Context, in domain.DeletionRequestInput) (domain.DeletionRequest, error) {
	if !domain.IsValidID(in.SellerID) {
		return domain.DeletionRequest{}, apperror.NewValidationError("seller_id must be a valid id")
	}

	now := s.now().UTC().Truncate(time.Microsecond)
	return s.repo.Create(ctx, domain.DeletionRequest{
		ID:        uuid.New().String(),
		SellerID:  in.SellerID,
		Reason:    strings.TrimSpace(in.Reason),
		Status:    domain.DeletionPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Update registra a decisão do administrador (status e observações).
func (s *Service) Update(ctx context.Context, id string, patch domain.DeletionRequestPatch) (domain.DeletionRequest, error) {
	if !domain.IsValidID(id) {
		return domain.DeletionRequest{}, notFound(id)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.DeletionRequest{}, apperror.NewValidationError("status must be one of pending, approved, rejected")
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.DeletionRequest{}, err
	}
	patch.Apply(&current)
	current.UpdatedAt = domain.NextUpdatedAt(current.UpdatedAt, s.now())

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return domain.DeletionRequest{}, err
	}
	s.logger.Info("Solicitação de exclusão decidida.", map[string]interface{}{"id": id, "status": string(updated.Status)})
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !domain.IsValidID(id) {
		return notFound(id)
	}
	return s.repo.Delete(ctx, id)
}
