package eventrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
)

const eventColumns = `id, title, description, start_time, end_time, min_stock, min_discount,
        categories, banner_url, created_at, updated_at`

// EventRepository implementa as operações CRUD de eventos promocionais.
type EventRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewEventRepository cria e retorna uma nova instância do Repositório de Eventos.
func NewEventRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *EventRepository {
	return &EventRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// categories é um text[]; pq.StringArray cuida da conversão nos dois sentidos.
func scanEvent(row rowScanner) (domain.Event, error) {
	var e domain.Event
	var description, bannerURL sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &description, &e.StartTime, &e.EndTime, &e.MinStock, &e.MinDiscount,
		&e.Categories, &bannerURL, &e.CreatedAt, &e.UpdatedAt,
	)
	e.Description = description.String
	e.BannerURL = bannerURL.String
	if e.Categories == nil {
		e.Categories = []string{}
	}
	return e, err
}

// List busca todos os eventos, mais recentes primeiro.
func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+eventColumns+` FROM events ORDER BY created_at DESC`)
	if err != nil {
		r.logger.Error("Falha ao executar a listagem de eventos.", err)
		return nil, errors.NewDBError("Falha ao buscar eventos", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, errors.NewDBError("Falha ao mapear eventos do DB", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de eventos", err)
	}
	return events, nil
}

// FindByID busca um evento pelo ID.
func (r *EventRepository) FindByID(ctx context.Context, id string) (domain.Event, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	e, err := scanEvent(r.DB.QueryRowContext(ctxTimeout, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return domain.Event{}, errors.NewNotFoundError(fmt.Sprintf("Event %s not found", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar evento no DB.", err)
		return domain.Event{}, errors.NewDBError("Falha ao buscar evento", err)
	}
	return e, nil
}

// Create insere o evento.
func (r *EventRepository) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO events (id, title, description, start_time, end_time, min_stock, min_discount,
            categories, banner_url, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + eventColumns

	created, err := scanEvent(r.DB.QueryRowContext(ctxTimeout, query,
		e.ID, e.Title, e.Description, e.StartTime, e.EndTime, e.MinStock, e.MinDiscount,
		e.Categories, e.BannerURL, e.CreatedAt, e.UpdatedAt,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir evento no DB.", err)
		return domain.Event{}, errors.NewDBError("Falha ao criar evento", err)
	}

	r.logger.Info("Evento criado com sucesso.", map[string]interface{}{"id": created.ID, "title": created.Title})
	return created, nil
}

// Update sobrescreve os campos mutáveis do evento.
func (r *EventRepository) Update(ctx context.Context, e domain.Event) (domain.Event, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE events
        SET title = $1, description = $2, start_time = $3, end_time = $4, min_stock = $5,
            min_discount = $6, categories = $7, banner_url = $8, updated_at = $9
        WHERE id = $10
        RETURNING ` + eventColumns

	updated, err := scanEvent(r.DB.QueryRowContext(ctxTimeout, query,
		e.Title, e.Description, e.StartTime, e.EndTime, e.MinStock,
		e.MinDiscount, e.Categories, e.BannerURL, e.UpdatedAt, e.ID,
	))
	if err == sql.ErrNoRows {
		return domain.Event{}, errors.NewNotFoundError(fmt.Sprintf("Event %s not found", e.ID))
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar evento no DB.", err)
		return domain.Event{}, errors.NewDBError("Falha ao atualizar evento", err)
	}
	return updated, nil
}

// Delete remove o evento pelo ID.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar evento do DB.", err)
		return errors.NewDBError("Falha ao deletar evento", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("Event %s not found", id))
	}
	return nil
}
