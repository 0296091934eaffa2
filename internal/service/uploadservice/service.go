package uploadservice

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/pkg/storage"
)

const (
	DefaultBucket = "uploads"
	DefaultFolder = "files"
)

var (
	unsafeChars   = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	bucketPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)
)

// File é o arquivo recebido no multipart, já separado do transporte HTTP.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
	Bucket      string
	Folder      string
}

// Service grava arquivos no storage e devolve a URL pública.
type Service struct {
	store  storage.ObjectStore // nil quando o storage não está configurado
	logger logger.Logger
	now    func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Upload.
func NewService(store storage.ObjectStore, logger logger.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ObjectName monta "<epoch-ms>-<nome>" trocando caracteres fora de [a-zA-Z0-9.-] por "_".
func ObjectName(original string, at time.Time) string {
	return fmt.Sprintf("%d-%s", at.UnixMilli(), unsafeChars.ReplaceAllString(original, "_"))
}

func cleanFolder(folder string) (string, error) {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return DefaultFolder, nil
	}
	for _, seg := range strings.Split(folder, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", apperror.NewValidationError("folder is invalid")
		}
	}
	return folder, nil
}

// Upload valida o destino e grava o arquivo.
func (s *Service) Upload(ctx context.Context, f File) (domain.UploadResult, error) {
	if f.Body == nil || f.Name == "" {
		return domain.UploadResult{}, apperror.NewValidationError("No file provided")
	}

	bucket := f.Bucket
	if bucket == "" {
		bucket = DefaultBucket
	}
	if !bucketPattern.MatchString(bucket) {
		return domain.UploadResult{}, apperror.NewValidationError("bucket is invalid")
	}
	folder, err := cleanFolder(f.Folder)
	if err != nil {
		return domain.UploadResult{}, err
	}

	if s.store == nil {
		return domain.UploadResult{}, apperror.NewInternalError("Upload failed", fmt.Errorf("storage não configurado"))
	}

	objectPath := path.Join(folder, ObjectName(f.Name, s.now()))
	if err := s.store.Put(ctx, bucket, objectPath, f.Body, f.Size, f.ContentType); err != nil {
		s.logger.Error("Falha no upload para o storage.", err)
		return domain.UploadResult{}, apperror.NewInternalError("Upload failed", err)
	}

	s.logger.Info("Arquivo enviado.", map[string]interface{}{"bucket": bucket, "path": objectPath, "size": f.Size})
	return domain.UploadResult{
		Success: true,
		URL:     s.store.PublicURL(bucket, objectPath),
		Path:    objectPath,
	}, nil
}
