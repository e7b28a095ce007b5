package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockfilter.GO/model/api/searchcriteria"
)

func TestCriteriaBuilder_DropsUnknownFields(t *testing.T) {
	original := searchcriteria.NewSearchCriteriaBuilder().
		AddFilter("sku", "A%", "like").
		AddFilter("stock_status", "IN_STOCK", "eq").
		AddFilterGroup(&searchcriteria.FilterGroup{Filters: []*searchcriteria.Filter{
			{Field: "category_id", Value: "3"},
			{Field: "color", Value: "red"},
		}}).
		AddSortOrder("sku", "DESC").
		AddSortOrder("price", "ASC").
		SetPageSize(5).
		SetCurrentPage(2).
		Create()

	got, err := NewProductCollectionSearchCriteriaBuilder().Build(original)
	require.NoError(t, err)

	require.Len(t, got.FilterGroups, 2)
	assert.Equal(t, "sku", got.FilterGroups[0].Filters[0].Field)
	require.Len(t, got.FilterGroups[1].Filters, 1)
	assert.Equal(t, "category_id", got.FilterGroups[1].Filters[0].Field)
	assert.Empty(t, got.FiltersByField("stock_status"))

	require.Len(t, got.SortOrders, 1)
	assert.Equal(t, "sku", got.SortOrders[0].Field)
	assert.Equal(t, 5, got.PageSize)
	assert.Equal(t, 2, got.CurrentPage)
}

func TestCriteriaBuilder_DoesNotShareFilters(t *testing.T) {
	original := searchcriteria.NewSearchCriteriaBuilder().AddFilter("sku", "A", "eq").Create()
	got, err := NewProductCollectionSearchCriteriaBuilder().Build(original)
	require.NoError(t, err)
	assert.NotSame(t, original.FilterGroups[0].Filters[0], got.FilterGroups[0].Filters[0])
}

func TestCriteriaBuilder_NilOriginal(t *testing.T) {
	got, err := NewProductCollectionSearchCriteriaBuilder("sku").Build(nil)
	require.NoError(t, err)
	assert.Empty(t, got.FilterGroups)
}
