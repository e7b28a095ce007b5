// Package search runs product collection searches for the storefront.
package search

import (
	"stockfilter.GO/model/api/searchcriteria"
)

// DefaultSearchableFields are the fields the collection builder knows how to carry.
var DefaultSearchableFields = []string{"entity_id", "sku", "type_id", "attribute_set_id", "category_id", "name", "url_key"}

// DefaultSortableFields are the main table columns that can be sorted on.
var DefaultSortableFields = []string{"entity_id", "sku", "type_id", "created_at", "updated_at"}

// ProductCollectionSearchCriteriaBuilder rebuilds criteria from a known field list.
// Filters on any other field are dropped, stock_status included.
type ProductCollectionSearchCriteriaBuilder struct {
	fields   map[string]struct{}
	sortable map[string]struct{}
}

// NewProductCollectionSearchCriteriaBuilder creates a builder for fields
// (DefaultSearchableFields when none are given).
func NewProductCollectionSearchCriteriaBuilder(fields ...string) *ProductCollectionSearchCriteriaBuilder {
	if len(fields) == 0 {
		fields = DefaultSearchableFields
	}
	b := &ProductCollectionSearchCriteriaBuilder{
		fields:   make(map[string]struct{}, len(fields)),
		sortable: make(map[string]struct{}, len(DefaultSortableFields)),
	}
	for _, f := range fields {
		b.fields[f] = struct{}{}
	}
	for _, f := range DefaultSortableFields {
		b.sortable[f] = struct{}{}
	}
	return b
}

// Build returns new criteria holding the known filters, sort orders and paging of original.
func (b *ProductCollectionSearchCriteriaBuilder) Build(original *searchcriteria.SearchCriteria) (*searchcriteria.SearchCriteria, error) {
	out := searchcriteria.NewSearchCriteriaBuilder()
	if original == nil {
		return out.Create(), nil
	}

	fb := searchcriteria.NewFilterBuilder()
	gb := searchcriteria.NewFilterGroupBuilder()
	for _, group := range original.GetFilterGroups() {
		kept := 0
		for _, f := range group.GetFilters() {
			if f == nil {
				continue
			}
			if _, ok := b.fields[f.Field]; !ok {
				continue
			}
			gb.AddFilter(fb.
				SetField(f.Field).
				SetValue(f.Value).
				SetConditionType(f.ConditionType).
				Create())
			kept++
		}
		if kept > 0 {
			out.AddFilterGroup(gb.Create())
		}
	}

	for _, so := range original.SortOrders {
		if so == nil {
			continue
		}
		if _, ok := b.sortable[so.Field]; ok {
			out.AddSortOrder(so.Field, so.Direction)
		}
	}
	return out.
		SetPageSize(original.PageSize).
		SetCurrentPage(original.CurrentPage).
		SetRequestName(original.RequestName).
		Create(), nil
}
