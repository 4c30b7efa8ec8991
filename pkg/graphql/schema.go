package graphql

import (
	"github.com/graphql-go/graphql"
)

// NewSchema creates a GraphQL schema from the provided root query and
// mutation objects.
func NewSchema(query, mutation *graphql.Object) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
