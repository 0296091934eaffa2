package categoryrepo

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

const categoryColumns = `id, name, description, image_url, created_at, updated_at`

// CategoryRepository implementa as operações CRUD de categorias.
type CategoryRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewCategoryRepository cria e retorna uma nova instância do Repositório de Categorias.
func NewCategoryRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *CategoryRepository {
	return &CategoryRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (domain.Category, error) {
	var c domain.Category
	var description, imageURL sql.NullString
	err := row.Scan(&c.ID, &c.Name, &description, &imageURL, &c.CreatedAt, &c.UpdatedAt)
	c.Description = description.String
	c.ImageURL = imageURL.String
	return c, err
}

// List busca todas as categorias, mais recentes primeiro.
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+categoryColumns+` FROM categories ORDER BY created_at DESC`)
	if err != nil {
		r.logger.Error("Falha ao executar a listagem de categorias.", err)
		return nil, errors.NewDBError("Falha ao buscar categorias", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, errors.NewDBError("Falha ao mapear categorias do DB", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de categorias", err)
	}
	return categories, nil
}

// FindByID busca uma categoria pelo ID.
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (domain.Category, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	c, err := scanCategory(r.DB.QueryRowContext(ctxTimeout, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return domain.Category{}, errors.NewNotFoundError(fmt.Sprintf("Category %s not found", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar categoria no DB.", err)
		return domain.Category{}, errors.NewDBError("Falha ao buscar categoria", err)
	}
	return c, nil
}

// Create insere a categoria.
func (r *CategoryRepository) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO categories (id, name, description, image_url, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + categoryColumns

	created, err := scanCategory(r.DB.QueryRowContext(ctxTimeout, query,
		c.ID, c.Name, c.Description, c.ImageURL, c.CreatedAt, c.UpdatedAt))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Category{}, errors.NewValidationError("A category with this name already exists")
		}
		r.logger.Error("Falha ao inserir categoria no DB.", err)
		return domain.Category{}, errors.NewDBError("Falha ao criar categoria", err)
	}

	r.logger.Info("Categoria criada com sucesso.", map[string]interface{}{"id": created.ID, "name": created.Name})
	return created, nil
}

// Update sobrescreve os campos mutáveis da categoria.
func (r *CategoryRepository) Update(ctx context.Context, c domain.Category) (domain.Category, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE categories
        SET name = $1, description = $2, image_url = $3, updated_at = $4
        WHERE id = $5
        RETURNING ` + categoryColumns

	updated, err := scanCategory(r.DB.QueryRowContext(ctxTimeout, query,
		c.Name, c.Description, c.ImageURL, c.UpdatedAt, c.ID))
	if err == sql.ErrNoRows {
		return domain.Category{}, errors.NewNotFoundError(fmt.Sprintf("Category %s not found", c.ID))
	}
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Category{}, errors.NewValidationError("A category with this name already exists")
		}
		r.logger.Error("Falha ao atualizar categoria no DB.", err)
		return domain.Category{}, errors.NewDBError("Falha ao atualizar categoria", err)
	}
	return updated, nil
}

// Delete remove a categoria pelo ID.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar categoria do DB.", err)
		return errors.NewDBError("Falha ao deletar categoria", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("Category %s not found", id))
	}

	r.logger.Info("Categoria deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}
