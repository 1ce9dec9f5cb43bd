package server

import (
	"net/http"
)

// Handler defines an HTTP handler that knows its own routes.
type Handler interface {
	http.Handler      // ServeHTTP handles the HTTP request and writes the response
	Routes() []string // Routes returns the path patterns this handler serves
}

// Router registers [Handler] implementations on an internal mux.
type Router struct {
	mux *http.ServeMux
}

// NewRouter creates a new [Router] instance.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Handler registers a [Handler] on every route it reports.
func (r *Router) Handler(handler Handler) {
	for _, route := range handler.Routes() {
		r.mux.Handle(route, handler)
	}
}

// ServeHTTP implements [http.Handler] for the entire router.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
