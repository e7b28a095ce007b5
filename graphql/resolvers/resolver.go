package resolvers

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	gqlregistry "stockfilter.GO/graphql/registry"
	"stockfilter.GO/service/search"
)

// Resolver is the root resolver: one method per Query field.
// New Query fields: use RegisterSchemaExtension + add a method on Resolver,
// or use _extension for fully dynamic resolvers.
type Resolver struct {
	search *search.ProductSearch
	logger *zap.Logger
}

func NewResolver(s *search.ProductSearch, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{search: s, logger: logger}
}

// Extension dispatches to registered custom resolvers.
func (r *Resolver) Extension(ctx context.Context, args struct {
	Name string
	Args *string
}) (*string, error) {
	m := make(map[string]interface{})
	if args.Args != nil && *args.Args != "" {
		if err := json.Unmarshal([]byte(*args.Args), &m); err != nil {
			return nil, err
		}
	}
	out, err := gqlregistry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
