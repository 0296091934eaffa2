package uploadservice_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/pkg/storage"
	"backoffice/internal/service/uploadservice"
)

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, bucket, path string, body io.Reader, size int64, contentType string) error {
	return m.Called(ctx, bucket, path, body, size, contentType).Error(0)
}

func (m *MockObjectStore) PublicURL(bucket, path string) string {
	return storage.PublicURL("https://cdn.example.com", bucket, path)
}

var fixed = time.UnixMilli(1700000000000)

func TestObjectName(t *testing.T) {
	assert.Equal(t, "1700000000000-foto_da_loja__1_.png", uploadservice.ObjectName("foto da loja (1).png", fixed))
	assert.Equal(t, "1700000000000-banner-11.11.jpg", uploadservice.ObjectName("banner-11.11.jpg", fixed))
}

func TestUpload_Defaults(t *testing.T) {
	store := new(MockObjectStore)
	svc := uploadservice.NewService(store, logger.NewLogger("error")).WithClock(func() time.Time { return fixed })

	store.On("Put", mock.Anything, "uploads", "files/1700000000000-logo.png", mock.Anything, int64(4), "image/png").Return(nil)

	res, err := svc.Upload(context.Background(), uploadservice.File{
		Name: "logo.png", ContentType: "image/png", Size: 4, Body: strings.NewReader("\x89PNG"),
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "files/1700000000000-logo.png", res.Path)
	assert.Equal(t, "https://cdn.example.com/uploads/files/1700000000000-logo.png", res.URL)
	store.AssertExpectations(t)
}

func TestUpload_CustomBucketAndFolder(t *testing.T) {
	store := new(MockObjectStore)
	svc := uploadservice.NewService(store, logger.NewLogger("error")).WithClock(func() time.Time { return fixed })
	store.On("Put", mock.Anything, "banners", "events/2026/1700000000000-a.jpg", mock.Anything, int64(1), "").Return(nil)

	res, err := svc.Upload(context.Background(), uploadservice.File{
		Name: "a.jpg", Size: 1, Body: strings.NewReader("x"), Bucket: "banners", Folder: "/events/2026/",
	})
	require.NoError(t, err)
	assert.Equal(t, "events/2026/1700000000000-a.jpg", res.Path)
}

func TestUpload_Rejections(t *testing.T) {
	store := new(MockObjectStore)
	svc := uploadservice.NewService(store, logger.NewLogger("error"))

	_, err := svc.Upload(context.Background(), uploadservice.File{})
	_, _, msg := apperror.MapToHTTPStatus(err)
	assert.Equal(t, "No file provided", msg)

	for _, f := range []uploadservice.File{
		{Name: "a", Body: strings.NewReader("x"), Bucket: "../etc"},
		{Name: "a", Body: strings.NewReader("x"), Folder: "a/../../b"},
	} {
		_, err := svc.Upload(context.Background(), f)
		var ve *apperror.ValidationError
		assert.ErrorAs(t, err, &ve)
	}
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpload_StorageFailure(t *testing.T) {
	store := new(MockObjectStore)
	svc := uploadservice.NewService(store, logger.NewLogger("error"))
	store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("access denied"))

	_, err := svc.Upload(context.Background(), uploadservice.File{Name: "a.png", Body: strings.NewReader("x")})
	status, _, msg := apperror.MapToHTTPStatus(err)
	assert.Equal(t, 500, status)
	assert.Equal(t, "Internal server error", msg)
}

func TestUpload_NoStorageConfigured(t *testing.T) {
	svc := uploadservice.NewService(nil, logger.NewLogger("error"))
	_, err := svc.Upload(context.Background(), uploadservice.File{Name: "a.png", Body: strings.NewReader("x")})
	status, _, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, 500, status)
}
