package categoryservice_test

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
	"backoffice/internal/service/categoryservice"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(domain.Category) domain.Category); ok {
		return fn(c), args.Error(1)
	}
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c domain.Category) (domain.Category, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(domain.Category) domain.Category); ok {
		return fn(c), args.Error(1)
	}
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func echo(c domain.Category) domain.Category { return c }

func TestCreate(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := categoryservice.NewService(repo, logger.NewLogger("error"))
	repo.On("Create", mock.Anything, mock.Anything).Return(echo, nil)

	c, err := svc.Create(context.Background(), domain.CategoryInput{Name: "  Fashion ", ImageURL: "http://img"})
	require.NoError(t, err)
	assert.Equal(t, "Fashion", c.Name)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)
}

func TestCreate_RequiresName(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := categoryservice.NewService(repo, logger.NewLogger("error"))

	_, err := svc.Create(context.Background(), domain.CategoryInput{Description: "sem nome"})
	var ve *apperror.ValidationError
	assert.ErrorAs(t, err, &ve)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_PartialPatch(t *testing.T) {
	repo := new(MockCategoryRepository)
	prev := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	svc := categoryservice.NewService(repo, logger.NewLogger("error")).WithClock(func() time.Time { return prev })
	id := uuid.New().String()

	repo.On("FindByID", mock.Anything, id).Return(domain.Category{
		ID: id, Name: "Food", Description: "Comida", ImageURL: "http://a", CreatedAt: prev, UpdatedAt: prev,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(echo, nil)

	img := "http://b"
	c, err := svc.Update(context.Background(), id, domain.CategoryPatch{ImageURL: &img})
	require.NoError(t, err)
	assert.Equal(t, "Food", c.Name)
	assert.Equal(t, "Comida", c.Description)
	assert.Equal(t, "http://b", c.ImageURL)
	assert.True(t, c.UpdatedAt.After(prev), "updated_at avança mesmo com o relógio parado")
}

func TestList_SortsDesc(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := categoryservice.NewService(repo, logger.NewLogger("error"))
	base := time.Now()
	repo.On("List", mock.Anything).Return([]domain.Category{
		{ID: "old", CreatedAt: base.Add(-time.Hour)},
		{ID: "new", CreatedAt: base},
	}, nil)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new", list[0].ID)
}
