package deletionrepo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
)

var columns = []string{"id", "seller_id", "reason", "status", "admin_notes", "created_at", "updated_at"}

func newRepo(t *testing.T) (*DeletionRequestRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDeletionRequestRepository(db, time.Second, logger.NewLogger("error")), mock
}

func TestUpdate_SetsNotes(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()
	notes := "Saldo zerado, aprovado"

	mock.ExpectQuery("UPDATE seller_deletion_requests").
		WithArgs(domain.DeletionApproved, &notes, now, "d1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("d1", "s1", "fechando a loja", "approved", notes, now, now))

	d, err := repo.Update(context.Background(), domain.DeletionRequest{
		ID: "d1", Status: domain.DeletionApproved, AdminNotes: &notes, UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DeletionApproved, d.Status)
	require.NotNil(t, d.AdminNotes)
	assert.Equal(t, notes, *d.AdminNotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NullNotes(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()
	mock.ExpectQuery("FROM seller_deletion_requests ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("d1", "s1", "motivo", "pending", nil, now, now))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].AdminNotes)
	assert.Equal(t, domain.DeletionPending, list[0].Status)
}

func TestCreate_UnknownSeller(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("INSERT INTO seller_deletion_requests").WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Create(context.Background(), domain.DeletionRequest{ID: "d1", SellerID: "ghost", Status: domain.DeletionPending})
	var ve *apperror.ValidationError
	assert.ErrorAs(t, err, &ve)
}
