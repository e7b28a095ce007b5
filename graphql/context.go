package graphql

import (
	"context"
	"encoding/json"
	"strconv"
)

type contextKey string

const CtxKeyStoreID contextKey = "storeID"

// StoreIDFromContext returns the store ID for the current request.
func StoreIDFromContext(ctx context.Context) uint16 {
	if v := ctx.Value(CtxKeyStoreID); v != nil {
		if id, ok := v.(uint16); ok {
			return id
		}
	}
	return 0
}

// WithStoreID attaches storeID to context.
func WithStoreID(ctx context.Context, storeID uint16) context.Context {
	return context.WithValue(ctx, CtxKeyStoreID, storeID)
}

// Store sources for a request: Store header, __Store query param, variables.__Store.
const (
	HeaderStore     = "Store"
	QueryParamStore = "__Store"
	VarStore        = "__Store"
)

// ParseStore parses a store id from a header or query value.
func ParseStore(v string) (uint16, bool) {
	if v == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(v, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(id), true
}

// ParseStoreFromVariables reads variables.__Store from a GraphQL request body.
func ParseStoreFromVariables(body []byte) (uint16, bool) {
	var payload struct {
		Variables map[string]interface{} `json:"variables"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Variables == nil {
		return 0, false
	}
	if v, ok := payload.Variables[VarStore]; ok {
		switch val := v.(type) {
		case string:
			return ParseStore(val)
		case float64:
			return uint16(val), true
		}
	}
	return 0, false
}
