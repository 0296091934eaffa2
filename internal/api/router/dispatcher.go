package router

import (
	"fmt"
	"net/http"
	"strings"

	"backoffice/internal/api/respond"
	"backoffice/internal/domain"
	apperror "backoffice/internal/errors"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/pkg/middleware"
)

// HandlerFunc é a assinatura comum dos handlers despachados. id é o segundo
// segmento do caminho (vazio em coleções e ações).
type HandlerFunc func(w http.ResponseWriter, r *http.Request, id string)

// Arity do caminho: coleção (/sellers) ou registro (/sellers/{id}).
const (
	Collection = 1
	Record     = 2
)

// Route é uma linha da tabela de rotas.
//
// Rotas de recurso casam por (método, primeiro segmento, aridade). Rotas de ação
// (Action != "") casam pelo caminho completo, por exemplo "auth/login".
type Route struct {
	Method   string
	Resource string
	Action   string
	Arity    int
	Public   bool
	Handler  HandlerFunc
}

// Authorizer valida o header Authorization de rotas protegidas.
type Authorizer interface {
	Authorize(r *http.Request) (domain.Principal, error)
}

type routeKey struct {
	method   string
	resource string
	arity    int
}

type actionKey struct {
	method string
	path   string
}

// Dispatcher resolve método + caminho para uma Route, aplica a autorização e
// chama o handler. Não existe handler padrão: o que não casa é 404.
type Dispatcher struct {
	routes  map[routeKey]Route
	actions map[actionKey]Route
	authz   Authorizer
	logger  logger.Logger
}

// NewDispatcher monta o índice da tabela. Rotas duplicadas são erro de programação.
func NewDispatcher(table []Route, authz Authorizer, log logger.Logger) *Dispatcher {
	d := &Dispatcher{
		routes:  make(map[routeKey]Route, len(table)),
		actions: make(map[actionKey]Route),
		authz:   authz,
		logger:  log,
	}
	for _, rt := range table {
		if rt.Action != "" {
			k := actionKey{rt.Method, rt.Action}
			if _, dup := d.actions[k]; dup {
				panic(fmt.Sprintf("router: ação duplicada %s %s", rt.Method, rt.Action))
			}
			d.actions[k] = rt
			continue
		}
		k := routeKey{rt.Method, rt.Resource, rt.Arity}
		if _, dup := d.routes[k]; dup {
			panic(fmt.Sprintf("router: rota duplicada %s %s/%d", rt.Method, rt.Resource, rt.Arity))
		}
		d.routes[k] = rt
	}
	return d
}

// trimPath remove barras e o prefixo opcional /api.
func trimPath(p string) string {
	p = strings.Trim(p, "/")
	if p == "api" {
		return ""
	}
	return strings.TrimPrefix(p, "api/")
}

// Match resolve a rota e o id. POST ignora o segundo segmento (criação).
func (d *Dispatcher) Match(method, path string) (Route, string, bool) {
	p := trimPath(path)
	if p == "" {
		return Route{}, "", false
	}
	segs := strings.Split(p, "/")
	if len(segs) > Record {
		return Route{}, "", false
	}

	if rt, ok := d.actions[actionKey{method, p}]; ok {
		return rt, "", true
	}

	arity := len(segs)
	if method == http.MethodPost {
		arity = Collection
	}
	rt, ok := d.routes[routeKey{method, segs[0], arity}]
	if !ok {
		return Route{}, "", false
	}
	if arity == Record {
		return rt, segs[1], true
	}
	return rt, "", true
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			d.logger.Error("Panic no handler "+r.Method+" "+r.URL.Path, fmt.Errorf("%v", rec))
			respond.JSON(w, http.StatusInternalServerError, domain.ErrorResponse{
				Error:    "Internal server error",
				Category: apperror.CategoryInternal,
			})
		}
	}()

	rt, id, ok := d.Match(r.Method, r.URL.Path)
	if !ok {
		respond.JSON(w, http.StatusNotFound, domain.ErrorResponse{Error: "Not found", Category: apperror.CategoryNotFound})
		return
	}

	if !rt.Public {
		p, err := d.authz.Authorize(r)
		if err != nil {
			respond.Error(w, r, d.logger, err)
			return
		}
		r = r.WithContext(middleware.WithPrincipal(r.Context(), p))
	}

	rt.Handler(w, r, id)
}
