package adminrepo

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

// As listagens nunca leem a coluna password; só FindByUsername (login) carrega o hash.
const publicColumns = `id, username, email, role, created_at, updated_at`

// AdminRepository persiste as contas administrativas na tabela superadmin.
type AdminRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewAdminRepository cria e retorna uma nova instância do Repositório de Administradores.
func NewAdminRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *AdminRepository {
	return &AdminRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAdmin(row rowScanner) (domain.Admin, error) {
	var a domain.Admin
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func duplicateAdmin() error {
	return errors.NewValidationError("An admin with this username or email already exists")
}

// List busca todos os administradores, sem o hash da senha.
func (r *AdminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+publicColumns+` FROM superadmin ORDER BY created_at DESC`)
	if err != nil {
		r.logger.Error("Falha ao executar a listagem de administradores.", err)
		return nil, errors.NewDBError("Falha ao buscar administradores", err)
	}
	defer rows.Close()

	admins := []domain.Admin{}
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, errors.NewDBError("Falha ao mapear administradores do DB", err)
		}
		admins = append(admins, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de administradores", err)
	}
	return admins, nil
}

// FindByID busca um administrador pelo ID, sem o hash da senha.
func (r *AdminRepository) FindByID(ctx context.Context, id string) (domain.Admin, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	a, err := scanAdmin(r.DB.QueryRowContext(ctxTimeout, `SELECT `+publicColumns+` FROM superadmin WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return domain.Admin{}, errors.NewNotFoundError(fmt.Sprintf("Admin %s not found", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar administrador no DB.", err)
		return domain.Admin{}, errors.NewDBError("Falha ao buscar administrador", err)
	}
	return a, nil
}

// FindByUsername busca a credencial completa (com hash) para o login.
func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (domain.Admin, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT id, username, email, password, role, created_at, updated_at FROM superadmin WHERE username = $1`

	var a domain.Admin
	err := r.DB.QueryRowContext(ctxTimeout, query, username).Scan(
		&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Admin{}, errors.NewNotFoundError("Admin not found")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar administrador por username no DB.", err)
		return domain.Admin{}, errors.NewDBError("Falha ao buscar administrador", err)
	}
	return a, nil
}

// Count devolve o total de contas administrativas (usado no bootstrap).
func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var n int64
	if err := r.DB.QueryRowContext(ctxTimeout, `SELECT COUNT(*) FROM superadmin`).Scan(&n); err != nil {
		return 0, errors.NewDBError("Falha ao contar administradores", err)
	}
	return n, nil
}

// Create insere a conta. O hash já vem calculado pelo serviço.
func (r *AdminRepository) Create(ctx context.Context, a domain.Admin) (domain.Admin, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO superadmin (id, username, email, password, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + publicColumns

	created, err := scanAdmin(r.DB.QueryRowContext(ctxTimeout, query,
		a.ID, a.Username, a.Email, a.PasswordHash, a.Role, a.CreatedAt, a.UpdatedAt))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Admin{}, duplicateAdmin()
		}
		r.logger.Error("Falha ao inserir administrador no DB.", err)
		return domain.Admin{}, errors.NewDBError("Falha ao criar administrador", err)
	}

	r.logger.Info("Administrador criado com sucesso.", map[string]interface{}{"id": created.ID, "username": created.Username})
	return created, nil
}

// Update sobrescreve a conta. Um PasswordHash vazio preserva o hash atual.
func (r *AdminRepository) Update(ctx context.Context, a domain.Admin) (domain.Admin, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE superadmin
        SET username = $1, email = $2, role = $3, updated_at = $4,
            password = COALESCE(NULLIF($5, ''), password)
        WHERE id = $6
        RETURNING ` + publicColumns

	updated, err := scanAdmin(r.DB.QueryRowContext(ctxTimeout, query,
		a.Username, a.Email, a.Role, a.UpdatedAt, a.PasswordHash, a.ID))
	if err == sql.ErrNoRows {
		return domain.Admin{}, errors.NewNotFoundError(fmt.Sprintf("Admin %s not found", a.ID))
	}
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Admin{}, duplicateAdmin()
		}
		r.logger.Error("Falha ao atualizar administrador no DB.", err)
		return domain.Admin{}, errors.NewDBError("Falha ao atualizar administrador", err)
	}

	r.logger.Info("Administrador atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// Delete remove a conta pelo ID.
func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM superadmin WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar administrador do DB.", err)
		return errors.NewDBError("Falha ao deletar administrador", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("Admin %s not found", id))
	}

	r.logger.Info("Administrador deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}
