// Package routes wires the HTTP surface: the GraphQL endpoint plus the
// health and metrics endpoints.
package routes

import (
	"net/http"

	gql "github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/nikkei/app/graphql"
	"github.com/shashiranjanraj/nikkei/pkg/database"
	"github.com/shashiranjanraj/nikkei/pkg/metrics"
	"github.com/shashiranjanraj/nikkei/pkg/middleware"
	"github.com/shashiranjanraj/nikkei/pkg/reqid"
	"github.com/shashiranjanraj/nikkei/pkg/response"
	"github.com/shashiranjanraj/nikkei/pkg/router"
)

// Register mounts every route and the standard middleware chain.
func Register(r *router.Router, schema gql.Schema, db *database.DB) {
	r.Use(
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		metrics.Middleware(),
	)

	r.Post("/graphql", "graphql", graphql.Handler(schema))
	r.Get("/healthz", "health", health(db))
	r.Get("/metrics", "metrics", metrics.Handler())
}

func health(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "entity store unreachable")
			return
		}
		response.Success(w, map[string]string{"status": "ok"})
	}
}
