package sellerservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/service/sellerservice"
)

// MockSellerRepository é uma implementação mock da interface SellerRepository
type MockSellerRepository struct {
	mock.Mock
}

func (m *MockSellerRepository) List(ctx context.Context) ([]domain.Seller, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Seller), args.Error(1)
}

func (m *MockSellerRepository) FindByID(ctx context.Context, id string) (domain.Seller, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Seller), args.Error(1)
}

func (m *MockSellerRepository) Create(ctx context.Context, seller domain.Seller) (domain.Seller, error) {
	args := m.Called(ctx, seller)
	if fn, ok := args.Get(0).(func(context.Context, domain.Seller) domain.Seller); ok {
		return fn(ctx, seller), args.Error(1)
	}
	return args.Get(0).(domain.Seller), args.Error(1)
}

func (m *MockSellerRepository) Update(ctx context.Context, seller domain.Seller) (domain.Seller, error) {
	args := m.Called(ctx, seller)
	if fn, ok := args.Get(0).(func(context.Context, domain.Seller) domain.Seller); ok {
		return fn(ctx, seller), args.Error(1)
	}
	return args.Get(0).(domain.Seller), args.Error(1)
}

func (m *MockSellerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestLogger() logger.Logger {
	return logger.NewLogger("error")
}

func returnArg(args mock.Arguments) domain.Seller { return args.Get(1).(domain.Seller) }

// --- List ---

func TestList_OrdersNewestFirst(t *testing.T) {
	repo := new(MockSellerRepository)
	svc := sellerservice.NewService(repo, newTestLogger())
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Repositório devolve fora de ordem.
	repo.On("List", mock.Anything).Return([]domain.Seller{
		{ID: "s1", CreatedAt: base},
		{ID: "s3", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "s2", CreatedAt: base.Add(time.Hour)},
	}, nil)

	sellers, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sellers, 3)
	assert.Equal(t, []string{"s3", "s2", "s1"}, []string{sellers[0].ID, sellers[1].ID, sellers[2].ID})
}

// --- Create ---

func TestCreate_GeneratesIDAndTimestamps(t *testing.T) {
	repo := new(MockSellerRepository)
	now := time.Date(2026, 2, 3, 4, 5, 6, 789, time.UTC)
	svc := sellerservice.NewService(repo, newTestLogger()).WithClock(func() time.Time { return now })

	var saved domain.Seller
	repo.On("Create", mock.Anything, mock.AnythingOfType("domain.Seller")).
		Run(func(args mock.Arguments) { saved = returnArg(args) }).
		Return(func(ctx context.Context, s domain.Seller) domain.Seller { return s }, nil)

	created, err := svc.Create(context.Background(), domain.SellerInput{
		Name: "Ani", Email: "ani@toko.id", StoreName: "Toko Ani", DeliveryFee: 5000,
	})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(saved.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
	assert.Equal(t, now.Truncate(time.Microsecond), saved.CreatedAt)
	assert.Equal(t, "Toko Ani", created.StoreName)
	repo.AssertExpectations(t)
}

func TestCreate_Validation(t *testing.T) {
	repo := new(MockSellerRepository)
	svc := sellerservice.NewService(repo, newTestLogger())

	for _, in := range []domain.SellerInput{
		{Email: "x@y.z"},
		{Name: "Ani"},
		{Name: "Ani", Email: "x@y.z", DeliveryFee: -1},
	} {
		_, err := svc.Create(context.Background(), in)
		var ve *apperror.ValidationError
		assert.ErrorAs(t, err, &ve)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// --- Update ---

func TestUpdate_PartialPatchKeepsOtherFields(t *testing.T) {
	repo := new(MockSellerRepository)
	id := uuid.New().String()
	prev := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	svc := sellerservice.NewService(repo, newTestLogger()).WithClock(func() time.Time { return prev.Add(time.Hour) })

	current := domain.Seller{
		ID: id, Name: "Ani", Email: "ani@toko.id", Phone: "0812", StoreName: "Toko Ani",
		DeliveryFee: 5000, CreatedAt: prev, UpdatedAt: prev,
	}
	repo.On("FindByID", mock.Anything, id).Return(current, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("domain.Seller")).
		Return(func(ctx context.Context, s domain.Seller) domain.Seller { return s }, nil)

	newName := "Toko Ani Jaya"
	updated, err := svc.Update(context.Background(), id, domain.SellerPatch{StoreName: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Toko Ani Jaya", updated.StoreName)
	assert.Equal(t, "Ani", updated.Name)
	assert.Equal(t, "0812", updated.Phone)
	assert.Equal(t, 5000.0, updated.DeliveryFee)
	assert.Equal(t, prev, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(prev))
}

func TestUpdate_ClockBehindStillAdvances(t *testing.T) {
	repo := new(MockSellerRepository)
	id := uuid.New().String()
	prev := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	svc := sellerservice.NewService(repo, newTestLogger()).WithClock(func() time.Time { return prev.Add(-time.Minute) })

	repo.On("FindByID", mock.Anything, id).Return(domain.Seller{ID: id, UpdatedAt: prev}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("domain.Seller")).
		Return(func(ctx context.Context, s domain.Seller) domain.Seller { return s }, nil)

	updated, err := svc.Update(context.Background(), id, domain.SellerPatch{})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(prev))
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockSellerRepository)
	svc := sellerservice.NewService(repo, newTestLogger())
	id := uuid.New().String()

	repo.On("FindByID", mock.Anything, id).Return(domain.Seller{}, apperror.NewNotFoundError("Seller not found"))

	_, err := svc.Update(context.Background(), id, domain.SellerPatch{})
	var nf *apperror.NotFoundError
	assert.ErrorAs(t, err, &nf)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// --- Get / Delete ---

func TestGetAndDelete_MalformedIDIsNotFound(t *testing.T) {
	repo := new(MockSellerRepository)
	svc := sellerservice.NewService(repo, newTestLogger())

	_, err := svc.Get(context.Background(), "nao-e-uuid")
	var nf *apperror.NotFoundError
	assert.ErrorAs(t, err, &nf)

	err = svc.Delete(context.Background(), "nao-e-uuid")
	assert.ErrorAs(t, err, &nf)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_RepeatedIsAlwaysNotFound(t *testing.T) {
	repo := new(MockSellerRepository)
	svc := sellerservice.NewService(repo, newTestLogger())
	id := uuid.New().String()

	repo.On("Delete", mock.Anything, id).Return(apperror.NewNotFoundError("Seller not found"))

	for i := 0; i < 3; i++ {
		err := svc.Delete(context.Background(), id)
		status, _, _ := apperror.MapToHTTPStatus(err)
		assert.Equal(t, 404, status)
	}
	repo.AssertNumberOfCalls(t, "Delete", 3)
}
