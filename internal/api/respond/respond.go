// Package respond concentra a escrita de respostas JSON dos handlers, para que
// todos traduzam erros de serviço da mesma forma.
package respond

import (
	"encoding/json"
	"net/http"

	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
)

// JSON escreve o status e o corpo serializado. data nil resulta em corpo vazio.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Error traduz err para status/categoria/mensagem e escreve {"error", "category"}.
// 5xx são logados em ERROR com a causa; 4xx ficam em DEBUG.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error("Falha ao processar "+r.Method+" "+r.URL.Path, err)
	} else {
		log.Debug("Requisição rejeitada", map[string]interface{}{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   status,
			"category": category,
			"error":    err.Error(),
		})
	}

	JSON(w, status, domain.ErrorResponse{Error: message, Category: category})
}

// Handle é o antigo handleServiceResponse: escreve data com successStatus ou
// o erro traduzido.
func Handle(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err != nil {
		Error(w, r, log, err)
		return
	}
	JSON(w, successStatus, data)
}

// DecodeJSON lê o corpo da requisição em dst. Campos desconhecidos são ignorados;
// o DTO de destino funciona como whitelist.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return apperror.NewValidationError("Invalid JSON body")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidationError("Invalid JSON body")
	}
	return nil
}
