package categoryrepo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
)

var columns = []string{"id", "name", "description", "image_url", "created_at", "updated_at"}

func newRepo(t *testing.T) (*CategoryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCategoryRepository(db, time.Second, logger.NewLogger("error")), mock
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepo(t)
	created := time.Now().UTC().Add(-time.Hour)
	now := time.Now().UTC()

	mock.ExpectQuery("UPDATE categories").
		WithArgs("Fashion", "Roupas", "", now, "c1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("c1", "Fashion", "Roupas", nil, created, now))

	c, err := repo.Update(context.Background(), domain.Category{ID: "c1", Name: "Fashion", Description: "Roupas", UpdatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, now, c.UpdatedAt)
	assert.Empty(t, c.ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("UPDATE categories").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.Update(context.Background(), domain.Category{ID: "ghost"})
	var nf *apperror.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestFindByID(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()
	mock.ExpectQuery("FROM categories WHERE id = \\$1").WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("c1", "Food", nil, "http://img/food.png", now, now))

	c, err := repo.FindByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "http://img/food.png", c.ImageURL)
}
