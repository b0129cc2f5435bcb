package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vfg2006/social-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/social-metrics-api/pkg/middleware"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Lista de middlewares específicos para esta rota
}

type Router struct {
	router chi.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	mux := chi.NewRouter()
	mux.Use(middleware.Metrics())
	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, "Rede social ou operação não suportada", nil)
	})

	router := &Router{
		router: mux,
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		// Aplicar middlewares específicos da rota, do último para o primeiro
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			middleware := route.Middlewares[i]
			handler = middleware(handler)
		}

		r.router.Method(route.Method, route.Path, handler)
	}
}

// Param lê um parâmetro de caminho da rota atual
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
