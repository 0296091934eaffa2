package balanceservice

import (
	"context"
	"sort"

	"backoffice/internal/domain"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/service/enrich"
)

// BalanceRepository define as leituras de saldos e do livro-razão.
type BalanceRepository interface {
	ListBalances(ctx context.Context) ([]domain.SellerBalance, error)
	ListTransactions(ctx context.Context, limit int) ([]domain.BalanceTransaction, error)
}

// Service expõe saldos e transações de vendedores, somente leitura.
type Service struct {
	repo    BalanceRepository
	sellers enrich.SummaryFinder
	logger  logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Saldos.
func NewService(repo BalanceRepository, sellers enrich.SummaryFinder, logger logger.Logger) *Service {
	return &Service{repo: repo, sellers: sellers, logger: logger}
}

// ListBalances devolve os saldos enriquecidos, mais recentes primeiro.
func (s *Service) ListBalances(ctx context.Context) ([]domain.SellerBalance, error) {
	balances, err := s.repo.ListBalances(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(balances, func(i, j int) bool {
		return balances[i].CreatedAt.After(balances[j].CreatedAt)
	})

	ids := make([]string, len(balances))
	for i, b := range balances {
		ids[i] = b.SellerID
	}
	summaries := enrich.SellerSummaries(ctx, s.sellers, s.logger, ids)
	for i := range balances {
		balances[i].Seller = summaries[balances[i].SellerID]
	}
	return balances, nil
}

// ListTransactions devolve no máximo LedgerPageSize transações, mais recentes primeiro.
// O corte é reaplicado aqui mesmo que o repositório ignore o limite.
func (s *Service) ListTransactions(ctx context.Context) ([]domain.BalanceTransaction, error) {
	txs, err := s.repo.ListTransactions(ctx, domain.LedgerPageSize)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
	if len(txs) > domain.LedgerPageSize {
		txs = txs[:domain.LedgerPageSize]
	}

	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.SellerID
	}
	summaries := enrich.SellerSummaries(ctx, s.sellers, s.logger, ids)
	for i := range txs {
		txs[i].Seller = summaries[txs[i].SellerID]
	}
	return txs, nil
}
