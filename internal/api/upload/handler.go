package upload

import (
	"context"
	"errors"
	"net/http"

	"backoffice/internal/api/respond"
	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/service/uploadservice"
)

// UploadService grava o arquivo recebido no storage.
type UploadService interface {
	Upload(ctx context.Context, f uploadservice.File) (domain.UploadResult, error)
}

type Handler struct {
	Service  UploadService
	Logger   logger.Logger
	MaxBytes int64
}

// NewHandler cria o handler de upload; maxBytes limita o corpo multipart.
func NewHandler(svc UploadService, log logger.Logger, maxBytes int64) *Handler {
	return &Handler{Service: svc, Logger: log, MaxBytes: maxBytes}
}

// Upload lida com POST /api/upload (multipart: file, bucket, folder).
// @Summary Envia um arquivo para o storage
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Arquivo"
// @Param bucket formData string false "Bucket (padrão uploads)"
// @Param folder formData string false "Pasta (padrão files)"
// @Success 200 {object} domain.UploadResult
// @Failure 400 {object} domain.ErrorResponse "Arquivo ausente ou destino inválido"
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request, _ string) {
	if h.MaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(w, r, h.Logger, apperror.NewValidationError("File too large"))
			return
		}
		respond.Error(w, r, h.Logger, apperror.NewValidationError("No file provided"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, r, h.Logger, apperror.NewValidationError("No file provided"))
		return
	}
	defer file.Close()

	result, err := h.Service.Upload(r.Context(), uploadservice.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
		Bucket:      r.FormValue("bucket"),
		Folder:      r.FormValue("folder"),
	})
	respond.Handle(w, r, h.Logger, result, err, http.StatusOK)
}
