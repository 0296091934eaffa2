package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/pkg/storage"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t,
		"https://cdn.example.com/uploads/files/1700000000000-foto_1.png",
		storage.PublicURL("https://cdn.example.com/", "uploads", "files/1700000000000-foto_1.png"))

	assert.Equal(t,
		"http://localhost:9000/banners/a%20b/c.png",
		storage.PublicURL("http://localhost:9000", "banners", "a b/c.png"))
}

func TestNewS3Store(t *testing.T) {
	_, err := storage.NewS3Store(storage.Config{})
	assert.Error(t, err)

	s, err := storage.NewS3Store(storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/uploads/files/x.png", s.PublicURL("uploads", "files/x.png"))

	s, err = storage.NewS3Store(storage.Config{Endpoint: "s3.example.com", UseSSL: true, PublicURL: "https://cdn.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/x.png", s.PublicURL("uploads", "x.png"))
}
