package graphqlserver

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"go.uber.org/zap"

	"stockfilter.GO/graphql"
	"stockfilter.GO/graphql/resolvers"
	"stockfilter.GO/service/search"
)

// NewSchema parses the schema (with registered extensions) against the root resolver.
func NewSchema(s *search.ProductSearch, logger *zap.Logger) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), resolvers.NewResolver(s, logger), gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
