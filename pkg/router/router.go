// Package router is a thin wrapper over chi that tracks named routes, so the
// CLI can list them and handlers can be looked up by name.
package router

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

type Middleware func(http.Handler) http.Handler

// RouteInfo describes one registered named route.
type RouteInfo struct {
	Method string
	Path   string
	Name   string
}

type Router struct {
	mux   chi.Router
	infos []RouteInfo
	mu    sync.RWMutex
}

func New() *Router {
	return &Router{mux: chi.NewRouter()}
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func (r *Router) Use(middlewares ...Middleware) {
	for _, mw := range middlewares {
		r.mux.Use(mw)
	}
}

func (r *Router) Get(path, name string, handler http.HandlerFunc) {
	r.mount(http.MethodGet, path, name, handler)
}

func (r *Router) Post(path, name string, handler http.HandlerFunc) {
	r.mount(http.MethodPost, path, name, handler)
}

// Routes returns every named route registered so far.
func (r *Router) Routes() []RouteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]RouteInfo(nil), r.infos...)
}

// Path returns the path registered under name.
func (r *Router) Path(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, info := range r.infos {
		if info.Name == name {
			return info.Path, true
		}
	}
	return "", false
}

func (r *Router) mount(method, path, name string, handler http.HandlerFunc) {
	full := normalizePath(path)
	r.mux.Method(method, full, handler)

	if name == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, RouteInfo{Method: method, Path: full, Name: name})
}

func normalizePath(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "/"
	}
	return "/" + trimmed
}
