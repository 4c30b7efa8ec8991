package graphql

import (
	"github.com/graphql-go/graphql"

	gqlschema "github.com/shashiranjanraj/nikkei/pkg/graphql"
)

// NewSchema assembles the executable schema from the object types and the
// root query and mutation objects.
func NewSchema(deps Deps) (graphql.Schema, error) {
	b := newBuilder(deps)
	return gqlschema.NewSchema(b.queryRoot(), b.mutationRoot())
}
