package graphql

import (
	"strings"
	"sync"

	_ "embed"
)

//go:embed schema.graphqls
var schemaBase string

var (
	schemaExtensions []string
	schemaMu         sync.Mutex
)

// RegisterSchemaExtension appends schema (e.g. "extend type Query { ... }"). Call from init().
func RegisterSchemaExtension(schema string) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	schemaExtensions = append(schemaExtensions, strings.TrimSpace(schema))
}

// Schema returns base schema + registered extensions.
func Schema() string {
	schemaMu.Lock()
	ext := schemaExtensions
	schemaMu.Unlock()
	if len(ext) == 0 {
		return schemaBase
	}
	return schemaBase + "\n\n" + strings.Join(ext, "\n\n")
}

// --- Schema arg types (used by resolvers for graphql-go method matching) ---

type FilterEqualTypeInput struct {
	Eq *string
	In *[]*string
}

type FilterMatchTypeInput struct {
	Match *string
}

type ProductAttributeFilterInput struct {
	SKU         *FilterEqualTypeInput
	Name        *FilterMatchTypeInput
	URLKey      *FilterEqualTypeInput
	TypeID      *FilterEqualTypeInput
	CategoryID  *FilterEqualTypeInput
	StockStatus *FilterEqualTypeInput
}

type ProductAttributeSortInput struct {
	EntityID *string
	SKU      *string
}

type ProductsArgs struct {
	Search      *string
	Filter      *ProductAttributeFilterInput
	PageSize    int32
	CurrentPage int32
	Sort        *ProductAttributeSortInput
}
