package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore define o contrato de armazenamento de arquivos usado pelo upload.
type ObjectStore interface {
	Put(ctx context.Context, bucket, path string, body io.Reader, size int64, contentType string) error
	PublicURL(bucket, path string) string
}

// Config reúne os parâmetros de conexão com o storage compatível com S3.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
	// PublicURL é a base pública dos objetos; se vazia, deriva do endpoint.
	PublicURL string
}

// S3Store implementa ObjectStore com o cliente minio.
type S3Store struct {
	client     *minio.Client
	publicBase string
}

// NewS3Store cria o cliente. Nenhuma chamada de rede é feita aqui.
func NewS3Store(cfg Config) (*S3Store, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint do storage não configurado")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao criar o cliente de storage: %w", err)
	}

	base := cfg.PublicURL
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint
	}

	return &S3Store{client: client, publicBase: strings.TrimRight(base, "/")}, nil
}

// Put grava o objeto. Objetos existentes não são sobrescritos silenciosamente:
// o nome do arquivo já carrega um timestamp, então colisões são improváveis.
func (s *S3Store) Put(ctx context.Context, bucket, path string, body io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, bucket, path, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("falha ao gravar %s/%s: %w", bucket, path, err)
	}
	return nil
}

// PublicURL monta a URL pública do objeto.
func (s *S3Store) PublicURL(bucket, path string) string {
	return PublicURL(s.publicBase, bucket, path)
}

// PublicURL junta base, bucket e caminho escapando cada segmento.
func PublicURL(base, bucket, path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(bucket) + "/" + strings.Join(segments, "/")
}
