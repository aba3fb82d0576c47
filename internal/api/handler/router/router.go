// Package router envolve o httprouter com registro declarativo de
// rotas: cada grupo de handlers devolve suas Routes e o servidor só as
// compõe.
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// WithRoutes registra um grupo de rotas na construção do Router
var WithRoutes = func(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// Route descreve uma rota HTTP e os middlewares exclusivos dela.
// Middlewares globais ficam na cadeia do servidor, não aqui.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas aplicando os middlewares de cada uma.
// A iteração é do último para o primeiro para que o primeiro da lista
// seja o mais externo na execução.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			middleware := route.Middlewares[i]
			handler = middleware(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
