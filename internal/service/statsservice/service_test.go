package statsservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/service/statsservice"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Count(ctx context.Context, table string) (int64, error) {
	args := m.Called(ctx, table)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) Revenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func TestStats(t *testing.T) {
	repo := new(MockStatsRepository)
	svc := statsservice.NewService(repo, logger.NewLogger("error"))
	repo.On("Count", mock.Anything, "sellers").Return(int64(3), nil)
	repo.On("Count", mock.Anything, "categories").Return(int64(7), nil)
	repo.On("Count", mock.Anything, "events").Return(int64(0), nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Sellers: 3, Categories: 7, Events: 0}, stats)
	repo.AssertExpectations(t)
}

func TestAnalytics(t *testing.T) {
	repo := new(MockStatsRepository)
	svc := statsservice.NewService(repo, logger.NewLogger("error"))
	for table, n := range map[string]int64{
		"sellers": 1, "categories": 2, "events": 3, "users": 4,
		"products": 5, "product_variants": 6, "orders": 7,
	} {
		repo.On("Count", mock.Anything, table).Return(n, nil)
	}
	repo.On("Revenue", mock.Anything).Return(99.5, nil)

	a, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Analytics{
		Sellers: 1, Categories: 2, Events: 3, Users: 4, Products: 5, Variants: 6, Orders: 7, Revenue: 99.5,
	}, a)
}

func TestAnalytics_FailureIsInternal(t *testing.T) {
	repo := new(MockStatsRepository)
	svc := statsservice.NewService(repo, logger.NewLogger("error"))
	repo.On("Count", mock.Anything, "users").Return(int64(0), errors.New("relation users does not exist"))
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)
	repo.On("Revenue", mock.Anything).Return(0.0, nil)

	_, err := svc.Analytics(context.Background())
	status, category, msg := apperror.MapToHTTPStatus(err)
	assert.Equal(t, 500, status)
	assert.Equal(t, apperror.CategoryInternal, category)
	assert.Equal(t, "Internal server error", msg)
}
