package router

import (
	"net/http"

	"backoffice/internal/api/auth"
	"backoffice/internal/api/resource"
	"backoffice/internal/api/stats"
	"backoffice/internal/api/upload"
	"backoffice/internal/domain"
)

// Nomes dos recursos como aparecem no primeiro segmento do caminho.
const (
	ResourceSellers          = "sellers"
	ResourceCategories       = "categories"
	ResourceEvents           = "events"
	ResourceAdmins           = "admins"
	ResourceDeletionRequests = "seller-deletion-requests"
	ResourceBalances         = "seller-balances"
	ResourceTransactions     = "seller-balance-transactions"
)

// Handlers reúne os handlers já inicializados que a tabela de rotas referencia.
type Handlers struct {
	Sellers          *resource.Handler[domain.Seller, domain.SellerInput, domain.SellerPatch]
	Categories       *resource.Handler[domain.Category, domain.CategoryInput, domain.CategoryPatch]
	Events           *resource.Handler[domain.Event, domain.EventInput, domain.EventPatch]
	Admins           *resource.Handler[domain.Admin, domain.AdminInput, domain.AdminPatch]
	DeletionRequests *resource.Handler[domain.DeletionRequest, domain.DeletionRequestInput, domain.DeletionRequestPatch]
	Balances         HandlerFunc
	Transactions     HandlerFunc
	Auth             *auth.Handler
	Stats            *stats.Handler
	Upload           *upload.Handler
}

// crud gera as cinco rotas de um recurso. publicRead libera list/get sem token;
// mutações sempre exigem autenticação.
func crud[T, C, U any](name string, h *resource.Handler[T, C, U], publicRead bool) []Route {
	return []Route{
		{Method: http.MethodGet, Resource: name, Arity: Collection, Public: publicRead, Handler: h.List},
		{Method: http.MethodGet, Resource: name, Arity: Record, Public: publicRead, Handler: h.Get},
		{Method: http.MethodPost, Resource: name, Arity: Collection, Handler: h.Create},
		{Method: http.MethodPut, Resource: name, Arity: Record, Handler: h.Update},
		{Method: http.MethodDelete, Resource: name, Arity: Record, Handler: h.Delete},
	}
}

// Table é a tabela declarativa de rotas do back-office.
func Table(h Handlers) []Route {
	var t []Route
	t = append(t, crud(ResourceSellers, h.Sellers, true)...)
	t = append(t, crud(ResourceCategories, h.Categories, true)...)
	t = append(t, crud(ResourceEvents, h.Events, true)...)
	t = append(t, crud(ResourceAdmins, h.Admins, false)...)
	t = append(t, crud(ResourceDeletionRequests, h.DeletionRequests, false)...)

	t = append(t,
		// Saldos e ledger são somente leitura.
		Route{Method: http.MethodGet, Resource: ResourceBalances, Arity: Collection, Handler: h.Balances},
		Route{Method: http.MethodGet, Resource: ResourceTransactions, Arity: Collection, Handler: h.Transactions},

		Route{Method: http.MethodPost, Action: "auth/login", Public: true, Handler: h.Auth.Login},
		Route{Method: http.MethodPost, Action: "login", Public: true, Handler: h.Auth.Login},
		Route{Method: http.MethodGet, Action: "auth/me", Handler: h.Auth.Me},
		Route{Method: http.MethodGet, Action: "setup", Public: true, Handler: h.Auth.Setup},

		Route{Method: http.MethodGet, Action: "stats", Handler: h.Stats.Stats},
		Route{Method: http.MethodGet, Action: "analytics", Handler: h.Stats.Analytics},
		Route{Method: http.MethodPost, Action: "upload", Handler: h.Upload.Upload},
	)
	return t
}
