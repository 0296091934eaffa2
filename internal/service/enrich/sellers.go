// Package enrich anexa o resumo do vendedor aos registros que referenciam seller_id.
package enrich

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
)

// MaxConcurrentLookups limita quantas buscas de vendedor rodam ao mesmo tempo.
const MaxConcurrentLookups = 8

// SummaryFinder é a parte do repositório de vendedores usada no enriquecimento.
type SummaryFinder interface {
	FindSummary(ctx context.Context, id string) (domain.SellerSummary, error)
}

// SellerSummaries busca o resumo de cada vendedor distinto. Uma busca que falha
// deixa o vendedor fora do mapa (o campo aninhado sai null) e nunca falha a listagem.
func SellerSummaries(ctx context.Context, finder SummaryFinder, log logger.Logger, sellerIDs []string) map[string]*domain.SellerSummary {
	unique := make(map[string]struct{}, len(sellerIDs))
	for _, id := range sellerIDs {
		if id != "" {
			unique[id] = struct{}{}
		}
	}

	var (
		mu     sync.Mutex
		result = make(map[string]*domain.SellerSummary, len(unique))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentLookups)

	for id := range unique {
		id := id
		g.Go(func() error {
			summary, err := finder.FindSummary(gctx, id)
			if err != nil {
				var nf *apperror.NotFoundError
				if errors.As(err, &nf) {
					log.Debug("Vendedor referenciado não existe mais.", map[string]interface{}{"seller_id": id})
				} else {
					log.Warn("Falha ao buscar resumo do vendedor; campo sellers ficará nulo.", map[string]interface{}{"seller_id": id, "error": err.Error()})
				}
				// Erro engolido: as demais buscas seguem.
				return nil
			}
			mu.Lock()
			result[id] = &summary
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return result
}
