package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "backoffice/docs" // registra a especificação servida em /swagger/doc.json
	"backoffice/internal/pkg/metrics"
)

// NewRouter monta o roteador HTTP final: rotas operacionais no ServeMux e o
// resto entregue ao dispatcher. limit envolve apenas o dispatcher.
func NewRouter(dispatcher http.Handler, limit func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	// Rota de Ping/Health Check
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if limit != nil {
		dispatcher = limit(dispatcher)
	}
	mux.Handle("/", dispatcher)

	return metrics.Instrument(mux)
}
