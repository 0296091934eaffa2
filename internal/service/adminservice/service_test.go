package adminservice_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/pkg/password"
	"backoffice/internal/service/adminservice"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) FindByID(ctx context.Context, id string) (domain.Admin, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Admin), args.Error(1)
}

// Create e Update devolvem o registro recebido, como o RETURNING do repositório real
// (que nunca inclui o hash). Mantemos o hash aqui para provar que o serviço o remove.
func (m *MockAdminRepository) Create(ctx context.Context, a domain.Admin) (domain.Admin, error) {
	args := m.Called(ctx, a)
	return a, args.Error(0)
}

func (m *MockAdminRepository) Update(ctx context.Context, a domain.Admin) (domain.Admin, error) {
	args := m.Called(ctx, a)
	return a, args.Error(0)
}

func (m *MockAdminRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newService(repo *MockAdminRepository) *adminservice.Service {
	return adminservice.NewService(repo, password.NewHasher(4), logger.NewLogger("error"))
}

func TestCreate_HashesAndHides(t *testing.T) {
	repo := new(MockAdminRepository)
	svc := newService(repo)

	var persisted domain.Admin
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { persisted = args.Get(1).(domain.Admin) }).
		Return(nil)

	created, err := svc.Create(context.Background(), domain.AdminInput{
		Username: "ops", Email: "ops@example.com", Password: "admin123",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleAdmin, created.Role, "papel padrão")
	assert.NotEqual(t, "admin123", persisted.PasswordHash)
	assert.True(t, password.NewHasher(4).Verify("admin123", persisted.PasswordHash))

	body, err := json.Marshal(created)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "admin123")
	assert.NotContains(t, string(body), persisted.PasswordHash)
	assert.NotContains(t, string(body), "password")
}

func TestCreate_Validation(t *testing.T) {
	repo := new(MockAdminRepository)
	svc := newService(repo)

	cases := []domain.AdminInput{
		{Email: "a@b.c", Password: "x"},
		{Username: "a", Email: "invalido", Password: "x"},
		{Username: "a", Email: "a@b.c"},
		{Username: "a", Email: "a@b.c", Password: "x", Role: "root"},
	}
	for _, in := range cases {
		_, err := svc.Create(context.Background(), in)
		var ve *apperror.ValidationError
		assert.ErrorAs(t, err, &ve, "input %+v", in)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_PasswordOnlyWhenSupplied(t *testing.T) {
	repo := new(MockAdminRepository)
	svc := newService(repo)
	id := uuid.New().String()
	prev := time.Now().UTC().Add(-time.Hour)

	repo.On("FindByID", mock.Anything, id).Return(domain.Admin{
		ID: id, Username: "ops", Email: "ops@example.com", Role: domain.RoleAdmin, UpdatedAt: prev,
	}, nil)

	var persisted []domain.Admin
	repo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { persisted = append(persisted, args.Get(1).(domain.Admin)) }).
		Return(nil)

	role := domain.RoleViewer
	got, err := svc.Update(context.Background(), id, domain.AdminPatch{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleViewer, got.Role)
	assert.Equal(t, "ops", got.Username)
	assert.Empty(t, persisted[0].PasswordHash, "sem senha nova o hash é preservado")
	assert.True(t, got.UpdatedAt.After(prev))

	empty := ""
	_, err = svc.Update(context.Background(), id, domain.AdminPatch{Password: &empty})
	require.NoError(t, err)
	assert.Empty(t, persisted[1].PasswordHash)

	secret := "n0va-senha"
	got, err = svc.Update(context.Background(), id, domain.AdminPatch{Password: &secret})
	require.NoError(t, err)
	assert.True(t, password.NewHasher(4).Verify(secret, persisted[2].PasswordHash))
	assert.Empty(t, got.PasswordHash)
}

func TestUpdate_InvalidRole(t *testing.T) {
	repo := new(MockAdminRepository)
	svc := newService(repo)

	role := domain.AdminRole("god")
	_, err := svc.Update(context.Background(), uuid.New().String(), domain.AdminPatch{Role: &role})
	var ve *apperror.ValidationError
	assert.ErrorAs(t, err, &ve)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
