package statsrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
)

// Tabelas contáveis. O nome entra na query por concatenação, então só aceitamos esta lista.
const (
	TableSellers    = "sellers"
	TableCategories = "categories"
	TableEvents     = "events"
	TableUsers      = "users"
	TableProducts   = "products"
	TableVariants   = "product_variants"
	TableOrders     = "orders"
)

var countable = map[string]bool{
	TableSellers:    true,
	TableCategories: true,
	TableEvents:     true,
	TableUsers:      true,
	TableProducts:   true,
	TableVariants:   true,
	TableOrders:     true,
}

// StatsRepository calcula os agregados do painel.
type StatsRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewStatsRepository cria e retorna uma nova instância do Repositório de Estatísticas.
func NewStatsRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *StatsRepository {
	return &StatsRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

// Count devolve o número de linhas de uma tabela contável.
func (r *StatsRepository) Count(ctx context.Context, table string) (int64, error) {
	if !countable[table] {
		return 0, errors.NewInternalError(fmt.Sprintf("tabela %q não é contável", table), nil)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var n int64
	if err := r.DB.QueryRowContext(ctxTimeout, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao contar %s.", table), err)
		return 0, errors.NewDBError("Falha ao contar "+table, err)
	}
	return n, nil
}

// Revenue soma total_price dos pedidos com status recebido.
func (r *StatsRepository) Revenue(ctx context.Context) (float64, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total float64
	err := r.DB.QueryRowContext(ctxTimeout,
		`SELECT COALESCE(SUM(total_price), 0) FROM orders WHERE status = $1`, domain.OrderStatusReceived,
	).Scan(&total)
	if err != nil {
		r.logger.Error("Falha ao somar a receita.", err)
		return 0, errors.NewDBError("Falha ao calcular receita", err)
	}
	return total, nil
}
