package deletionrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
	"backoffice/internal/pkg/database"
	"backoffice/internal/pkg/logger"
)

const requestColumns = `id, seller_id, reason, status, admin_notes, created_at, updated_at`

// DeletionRequestRepository persiste as solicitações de exclusão de vendedores.
type DeletionRequestRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewDeletionRequestRepository cria e retorna uma nova instância do repositório.
func NewDeletionRequestRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *DeletionRequestRepository {
	return &DeletionRequestRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (domain.DeletionRequest, error) {
	var d domain.DeletionRequest
	var reason, notes sql.NullString
	err := row.Scan(&d.ID, &d.SellerID, &reason, &d.Status, &notes, &d.CreatedAt, &d.UpdatedAt)
	d.Reason = reason.String
	if notes.Valid {
		d.AdminNotes = &notes.String
	}
	return d, err
}

// List busca todas as solicitações, mais recentes primeiro.
func (r *DeletionRequestRepository) List(ctx context.Context) ([]domain.DeletionRequest, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+requestColumns+` FROM seller_deletion_requests ORDER BY created_at DESC`)
	if err != nil {
		r.logger.Error("Falha ao executar a listagem de solicitações de exclusão.", err)
		return nil, errors.NewDBError("Falha ao buscar solicitações de exclusão", err)
	}
	defer rows.Close()

	requests := []domain.DeletionRequest{}
	for rows.Next() {
		d, err := scanRequest(rows)
		if err != nil {
			return nil, errors.NewDBError("Falha ao mapear solicitações do DB", err)
		}
		requests = append(requests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de solicitações", err)
	}
	return requests, nil
}

// FindByID busca uma solicitação pelo ID.
func (r *DeletionRequestRepository) FindByID(ctx context.Context, id string) (domain.DeletionRequest, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	d, err := scanRequest(r.DB.QueryRowContext(ctxTimeout, `SELECT `+requestColumns+` FROM seller_deletion_requests WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return domain.DeletionRequest{}, errors.NewNotFoundError(fmt.Sprintf("Deletion request %s not found", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar solicitação de exclusão no DB.", err)
		return domain.DeletionRequest{}, errors.NewDBError("Falha ao buscar solicitação de exclusão", err)
	}
	return d, nil
}

// Create insere a solicitação.
func (r *DeletionRequestRepository) Create(ctx context.Context, d domain.DeletionRequest) (domain.DeletionRequest, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO seller_deletion_requests (id, seller_id, reason, status, admin_notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + requestColumns

	created, err := scanRequest(r.DB.QueryRowContext(ctxTimeout, query,
		d.ID, d.SellerID, d.Reason, d.Status, d.AdminNotes, d.CreatedAt, d.UpdatedAt))
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return domain.DeletionRequest{}, errors.NewValidationError("seller_id does not reference an existing seller")
		}
		r.logger.Error("Falha ao inserir solicitação de exclusão no DB.", err)
		return domain.DeletionRequest{}, errors.NewDBError("Falha ao criar solicitação de exclusão", err)
	}

	r.logger.Info("Solicitação de exclusão criada.", map[string]interface{}{"id": created.ID, "seller_id": created.SellerID})
	return created, nil
}

// Update grava a decisão do administrador.
func (r *DeletionRequestRepository) Update(ctx context.Context, d domain.DeletionRequest) (domain.DeletionRequest, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE seller_deletion_requests
        SET status = $1, admin_notes = $2, updated_at = $3
        WHERE id = $4
        RETURNING ` + requestColumns

	updated, err := scanRequest(r.DB.QueryRowContext(ctxTimeout, query, d.Status, d.AdminNotes, d.UpdatedAt, d.ID))
	if err == sql.ErrNoRows {
		return domain.DeletionRequest{}, errors.NewNotFoundError(fmt.Sprintf("Deletion request %s not found", d.ID))
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar solicitação de exclusão no DB.", err)
		return domain.DeletionRequest{}, errors.NewDBError("Falha ao atualizar solicitação de exclusão", err)
	}

	r.logger.Info("Solicitação de exclusão atualizada.", map[string]interface{}{"id": updated.ID, "status": string(updated.Status)})
	return updated, nil
}

// Delete remove a solicitação pelo ID.
func (r *DeletionRequestRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM seller_deletion_requests WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar solicitação de exclusão do DB.", err)
		return errors.NewDBError("Falha ao deletar solicitação de exclusão", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("Deletion request %s not found", id))
	}
	return nil
}
