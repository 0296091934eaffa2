package eventservice

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
)

// EventRepository define o contrato que o Serviço de Eventos espera da camada de Persistência.
type EventRepository interface {
	List(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id string) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id string) error
}

// Service implementa as regras de negócio de eventos promocionais.
type Service struct {
	repo   EventRepository
	logger logger.Logger
	now    func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Eventos.
func NewService(repo EventRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func notFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Event %s not found", id))
}

// validate confere as regras que valem tanto na criação quanto após aplicar um patch.
func validate(e domain.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return apperror.NewValidationError("title is required")
	}
	if !e.StartTime.IsZero() && !e.EndTime.IsZero() && e.EndTime.Before(e.StartTime) {
		return apperror.NewValidationError("end_time must not be before start_time")
	}
	if e.MinStock < 0 {
		return apperror.NewValidationError("min_stock must not be negative")
	}
	if e.MinDiscount < 0 || e.MinDiscount > 100 {
		return apperror.NewValidationError("min_discount must be between 0 and 100")
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	return events, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Event, error) {
	if !domain.IsValidID(id) {
		return domain.Event{}, notFound(id)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in domain.EventInput) (domain.Event, error) {
	now := s.now().UTC().Truncate(time.Microsecond)
	categories := pq.StringArray(in.Categories)
	if categories == nil {
		categories = pq.StringArray{}
	}

	event := domain.Event{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		MinStock:    in.MinStock,
		MinDiscount: in.MinDiscount,
		Categories:  categories,
		BannerURL:   in.BannerURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validate(event); err != nil {
		return domain.Event{}, err
	}
	return s.repo.Create(ctx, event)
}

func (s *Service) Update(ctx context.Context, id string, patch domain.EventPatch) (domain.Event, error) {
	if !domain.IsValidID(id) {
		return domain.Event{}, notFound(id)
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}
	patch.Apply(&current)
	if err := validate(current); err != nil {
		return domain.Event{}, err
	}
	current.UpdatedAt = domain.NextUpdatedAt(current.UpdatedAt, s.now())
	return s.repo.Update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !domain.IsValidID(id) {
		return notFound(id)
	}
	return s.repo.Delete(ctx, id)
}
