package balancerepo

import (
	"context"
	"database/sql"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
)

// BalanceRepository lê saldos e o livro-razão de vendedores. Não há escrita: os
// lançamentos são gerados pelo checkout do marketplace.
type BalanceRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewBalanceRepository cria e retorna uma nova instância do Repositório de Saldos.
func NewBalanceRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *BalanceRepository {
	return &BalanceRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

// ListBalances busca todos os saldos, mais recentes primeiro.
func (r *BalanceRepository) ListBalances(ctx context.Context) ([]domain.SellerBalance, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, seller_id, balance, withdrawable_balance, bank_code, account_number,
            account_holder_name, created_at, updated_at
        FROM seller_balances
        ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar a listagem de saldos.", err)
		return nil, errors.NewDBError("Falha ao buscar saldos", err)
	}
	defer rows.Close()

	balances := []domain.SellerBalance{}
	for rows.Next() {
		var b domain.SellerBalance
		var bankCode, accountNumber, holder sql.NullString
		if err := rows.Scan(&b.ID, &b.SellerID, &b.Balance, &b.WithdrawableBalance,
			&bankCode, &accountNumber, &holder, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, errors.NewDBError("Falha ao mapear saldos do DB", err)
		}
		b.BankCode = nullable(bankCode)
		b.AccountNumber = nullable(accountNumber)
		b.AccountHolderName = nullable(holder)
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de saldos", err)
	}
	return balances, nil
}

// ListTransactions busca as transações mais recentes, limitadas a `limit` linhas.
func (r *BalanceRepository) ListTransactions(ctx context.Context, limit int) ([]domain.BalanceTransaction, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, seller_id, type, amount, metadata::text, created_at
        FROM seller_balance_transactions
        ORDER BY created_at DESC
        LIMIT $1`

	rows, err := r.DB.QueryContext(ctxTimeout, query, limit)
	if err != nil {
		r.logger.Error("Falha ao executar a listagem de transações.", err)
		return nil, errors.NewDBError("Falha ao buscar transações", err)
	}
	defer rows.Close()

	txs := []domain.BalanceTransaction{}
	for rows.Next() {
		var tx domain.BalanceTransaction
		var metadata sql.NullString
		if err := rows.Scan(&tx.ID, &tx.SellerID, &tx.Type, &tx.Amount, &metadata, &tx.CreatedAt); err != nil {
			return nil, errors.NewDBError("Falha ao mapear transações do DB", err)
		}
		tx.Metadata = nullable(metadata)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de transações", err)
	}

	r.logger.Debug("Transações listadas.", map[string]interface{}{"total": len(txs), "limit": limit})
	return txs, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
