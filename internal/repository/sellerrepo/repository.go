package sellerrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
	"backoffice/internal/pkg/cache"
	"backoffice/internal/pkg/database"
	"backoffice/internal/pkg/logger"
)

const sellerColumns = `id, name, email, phone, store_name, store_address, business_name,
        is_delivery_available, delivery_fee, created_at, updated_at`

// SellerRepository implementa as operações CRUD de vendedores e a busca de resumos
// usada no enriquecimento de saldos, transações e solicitações de exclusão.
type SellerRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	cache     cache.Client // opcional; nil desliga o cache de resumos
	cacheTTL  time.Duration
	logger    logger.Logger
}

// NewSellerRepository cria e retorna uma nova instância do Repositório de Vendedores.
func NewSellerRepository(db *sql.DB, dbTimeout time.Duration, cacheClient cache.Client, cacheTTL time.Duration, logger logger.Logger) *SellerRepository {
	return &SellerRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		cache:     cacheClient,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

func summaryKey(id string) string {
	return "seller:summary:" + id
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeller(row rowScanner) (domain.Seller, error) {
	var s domain.Seller
	err := row.Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.StoreName, &s.StoreAddress, &s.BusinessName,
		&s.IsDeliveryAvailable, &s.DeliveryFee, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// List busca todos os vendedores, mais recentes primeiro.
func (r *SellerRepository) List(ctx context.Context) ([]domain.Seller, error) {
	r.logger.Debug("Iniciando List de vendedores no repositório.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + sellerColumns + ` FROM sellers ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar a listagem de vendedores.", err)
		return nil, errors.NewDBError("Falha ao buscar vendedores", err)
	}
	defer rows.Close()

	sellers := []domain.Seller{}
	for rows.Next() {
		s, err := scanSeller(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear vendedor.", err)
			return nil, errors.NewDBError("Falha ao mapear vendedores do DB", err)
		}
		sellers = append(sellers, s)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de vendedores.", err)
		return nil, errors.NewDBError("Erro após iteração de vendedores", err)
	}

	r.logger.Debug("List de vendedores concluído.", map[string]interface{}{"total": len(sellers)})
	return sellers, nil
}

// FindByID busca um vendedor pelo ID.
func (r *SellerRepository) FindByID(ctx context.Context, id string) (domain.Seller, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE id = $1`

	s, err := scanSeller(r.DB.QueryRowContext(ctxTimeout, query, id))
	if err == sql.ErrNoRows {
		r.logger.Debug("Vendedor não encontrado.", map[string]interface{}{"id": id})
		return domain.Seller{}, errors.NewNotFoundError(fmt.Sprintf("Seller %s not found", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar vendedor no DB.", err)
		return domain.Seller{}, errors.NewDBError("Falha ao buscar vendedor", err)
	}
	return s, nil
}

// Create insere o vendedor. ID e timestamps já vêm preenchidos pelo serviço.
func (r *SellerRepository) Create(ctx context.Context, s domain.Seller) (domain.Seller, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO sellers (id, name, email, phone, store_name, store_address, business_name,
            is_delivery_available, delivery_fee, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + sellerColumns

	created, err := scanSeller(r.DB.QueryRowContext(ctxTimeout, query,
		s.ID, s.Name, s.Email, s.Phone, s.StoreName, s.StoreAddress, s.BusinessName,
		s.IsDeliveryAvailable, s.DeliveryFee, s.CreatedAt, s.UpdatedAt,
	))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Seller{}, errors.NewValidationError("A seller with this email already exists")
		}
		r.logger.Error("Falha ao inserir vendedor no DB.", err)
		return domain.Seller{}, errors.NewDBError("Falha ao criar vendedor", err)
	}

	r.logger.Info("Vendedor criado com sucesso.", map[string]interface{}{"id": created.ID})
	return created, nil
}

// Update sobrescreve os campos mutáveis do vendedor e invalida o resumo em cache.
func (r *SellerRepository) Update(ctx context.Context, s domain.Seller) (domain.Seller, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE sellers
        SET name = $1, email = $2, phone = $3, store_name = $4, store_address = $5,
            business_name = $6, is_delivery_available = $7, delivery_fee = $8, updated_at = $9
        WHERE id = $10
        RETURNING ` + sellerColumns

	updated, err := scanSeller(r.DB.QueryRowContext(ctxTimeout, query,
		s.Name, s.Email, s.Phone, s.StoreName, s.StoreAddress,
		s.BusinessName, s.IsDeliveryAvailable, s.DeliveryFee, s.UpdatedAt, s.ID,
	))
	if err == sql.ErrNoRows {
		return domain.Seller{}, errors.NewNotFoundError(fmt.Sprintf("Seller %s not found", s.ID))
	}
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Seller{}, errors.NewValidationError("A seller with this email already exists")
		}
		r.logger.Error("Falha ao atualizar vendedor no DB.", err)
		return domain.Seller{}, errors.NewDBError("Falha ao atualizar vendedor", err)
	}

	r.invalidateSummary(ctx, s.ID)
	r.logger.Info("Vendedor atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// Delete remove o vendedor pelo ID.
func (r *SellerRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM sellers WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar vendedor do DB.", err)
		return errors.NewDBError("Falha ao deletar vendedor", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após deletar vendedor.", err)
		return errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("Seller %s not found", id))
	}

	r.invalidateSummary(ctx, id)
	r.logger.Info("Vendedor deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// Count devolve o total de vendedores.
func (r *SellerRepository) Count(ctx context.Context) (int64, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var n int64
	if err := r.DB.QueryRowContext(ctxTimeout, `SELECT COUNT(*) FROM sellers`).Scan(&n); err != nil {
		return 0, errors.NewDBError("Falha ao contar vendedores", err)
	}
	return n, nil
}

// FindSummary devolve o resumo do vendedor com cache-aside no Redis.
// Falhas do cache são apenas logadas; a fonte de verdade é o DB.
func (r *SellerRepository) FindSummary(ctx context.Context, id string) (domain.SellerSummary, error) {
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, summaryKey(id))
		if err == nil {
			var summary domain.SellerSummary
			if jsonErr := json.Unmarshal([]byte(cached), &summary); jsonErr == nil {
				return summary, nil
			}
		} else if err != cache.ErrCacheMiss {
			r.logger.Warn("Falha ao ler resumo de vendedor do cache.", map[string]interface{}{"id": id, "error": err.Error()})
		}
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var summary domain.SellerSummary
	err := r.DB.QueryRowContext(ctxTimeout,
		`SELECT name, email, store_name, business_name FROM sellers WHERE id = $1`, id,
	).Scan(&summary.Name, &summary.Email, &summary.StoreName, &summary.BusinessName)
	if err == sql.ErrNoRows {
		return domain.SellerSummary{}, errors.NewNotFoundError(fmt.Sprintf("Seller %s not found", id))
	}
	if err != nil {
		return domain.SellerSummary{}, errors.NewDBError("Falha ao buscar resumo do vendedor", err)
	}

	if r.cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := r.cache.Set(ctx, summaryKey(id), payload, r.cacheTTL); err != nil {
				r.logger.Warn("Falha ao gravar resumo de vendedor no cache.", map[string]interface{}{"id": id, "error": err.Error()})
			}
		}
	}
	return summary, nil
}

func (r *SellerRepository) invalidateSummary(ctx context.Context, id string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, summaryKey(id)); err != nil {
		r.logger.Warn("Falha ao invalidar resumo de vendedor no cache.", map[string]interface{}{"id": id, "error": err.Error()})
	}
}
