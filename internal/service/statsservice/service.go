package statsservice

import (
	"context"

	"golang.org/x/sync/errgroup"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/repository/statsrepo"
)

// StatsRepository define os agregados necessários para o painel.
type StatsRepository interface {
	Count(ctx context.Context, table string) (int64, error)
	Revenue(ctx context.Context) (float64, error)
}

// Service calcula os contadores do painel em paralelo.
type Service struct {
	repo   StatsRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Estatísticas.
func NewService(repo StatsRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Stats devolve a contagem de vendedores, categorias e eventos.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	var out domain.Stats

	g, gctx := errgroup.WithContext(ctx)
	s.count(g, gctx, statsrepo.TableSellers, &out.Sellers)
	s.count(g, gctx, statsrepo.TableCategories, &out.Categories)
	s.count(g, gctx, statsrepo.TableEvents, &out.Events)

	if err := g.Wait(); err != nil {
		s.logger.Error("Falha ao calcular estatísticas.", err)
		return domain.Stats{}, apperror.NewInternalError("Falha ao calcular estatísticas", err)
	}
	return out, nil
}

// Analytics devolve os contadores do marketplace e a receita de pedidos recebidos.
// A primeira falha cancela as demais consultas.
func (s *Service) Analytics(ctx context.Context) (domain.Analytics, error) {
	var out domain.Analytics

	g, gctx := errgroup.WithContext(ctx)
	s.count(g, gctx, statsrepo.TableSellers, &out.Sellers)
	s.count(g, gctx, statsrepo.TableCategories, &out.Categories)
	s.count(g, gctx, statsrepo.TableEvents, &out.Events)
	s.count(g, gctx, statsrepo.TableUsers, &out.Users)
	s.count(g, gctx, statsrepo.TableProducts, &out.Products)
	s.count(g, gctx, statsrepo.TableVariants, &out.Variants)
	s.count(g, gctx, statsrepo.TableOrders, &out.Orders)
	g.Go(func() error {
		revenue, err := s.repo.Revenue(gctx)
		if err != nil {
			return err
		}
		out.Revenue = revenue
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Falha ao calcular analytics.", err)
		return domain.Analytics{}, apperror.NewInternalError("Failed to fetch analytics", err)
	}
	return out, nil
}

// Cada goroutine escreve em um campo distinto, então não há disputa.
func (s *Service) count(g *errgroup.Group, ctx context.Context, table string, dst *int64) {
	g.Go(func() error {
		n, err := s.repo.Count(ctx, table)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	})
}
