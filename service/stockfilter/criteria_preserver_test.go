package stockfilter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockfilter.GO/model/api/searchcriteria"
	"stockfilter.GO/model/collection"
)

func TestAfterBuild_NoTargetFilters_Unchanged(t *testing.T) {
	p := NewCriteriaPreserver("", nil)
	original := searchcriteria.NewSearchCriteriaBuilder().AddFilter("sku", "A", "eq").Create()
	resultGroup := &searchcriteria.FilterGroup{Filters: []*searchcriteria.Filter{{Field: "sku", Value: "A"}}}
	result := &searchcriteria.SearchCriteria{FilterGroups: []*searchcriteria.FilterGroup{resultGroup}}

	got := p.AfterBuild(result, original)
	assert.Same(t, result, got)
	require.Len(t, got.FilterGroups, 1)
	assert.Same(t, resultGroup, got.FilterGroups[0])
	assert.Equal(t, []*searchcriteria.Filter{{Field: "sku", Value: "A"}}, got.FilterGroups[0].Filters)
}

func TestAfterBuild_NFiltersAcrossGroups(t *testing.T) {
	p := NewCriteriaPreserver(FieldStockStatus, nil)
	f1 := &searchcriteria.Filter{Field: "stock_status", Value: "IN_STOCK", ConditionType: "eq"}
	f2 := &searchcriteria.Filter{Field: "stock_status", Value: "0", ConditionType: "neq"}
	f3 := &searchcriteria.Filter{Field: "stock_status", Value: "IN_STOCK", ConditionType: "eq"}
	original := &searchcriteria.SearchCriteria{FilterGroups: []*searchcriteria.FilterGroup{
		{Filters: []*searchcriteria.Filter{f1, {Field: "sku", Value: "x"}}},
		{Filters: []*searchcriteria.Filter{{Field: "category_id", Value: "3"}}},
		{Filters: []*searchcriteria.Filter{f2, f3}},
	}}
	existing := []*searchcriteria.FilterGroup{
		{Filters: []*searchcriteria.Filter{{Field: "sku", Value: "x"}}},
		{Filters: []*searchcriteria.Filter{{Field: "category_id", Value: "3"}}},
	}
	result := &searchcriteria.SearchCriteria{FilterGroups: append([]*searchcriteria.FilterGroup(nil), existing...)}

	got := p.AfterBuild(result, original)
	require.Len(t, got.FilterGroups, 3)
	assert.Same(t, existing[0], got.FilterGroups[0])
	assert.Same(t, existing[1], got.FilterGroups[1])

	added := got.FilterGroups[2].Filters
	require.Len(t, added, 3)
	for i, src := range []*searchcriteria.Filter{f1, f2, f3} {
		assert.NotSame(t, src, added[i])
		assert.Equal(t, *src, *added[i])
	}

	added[0].Value = "changed"
	assert.Equal(t, "IN_STOCK", f1.Value)
}

func TestAfterBuild_AppendsEvenWhenResultHasField(t *testing.T) {
	p := NewCriteriaPreserver("", nil)
	original := searchcriteria.NewSearchCriteriaBuilder().AddFilter("stock_status", "1", "eq").Create()
	result := searchcriteria.NewSearchCriteriaBuilder().AddFilter("stock_status", "1", "eq").Create()

	got := p.AfterBuild(result, original)
	assert.Len(t, got.FilterGroups, 2)
}

func TestAfterBuild_NilInputs(t *testing.T) {
	p := NewCriteriaPreserver("", nil)
	assert.Nil(t, p.AfterBuild(nil, searchcriteria.NewSearchCriteriaBuilder().AddFilter("stock_status", "1", "").Create()))
	result := &searchcriteria.SearchCriteria{}
	assert.Same(t, result, p.AfterBuild(result, nil))
	assert.Empty(t, result.FilterGroups)
}

func TestPreserveFilters_Decorates(t *testing.T) {
	dropAll := searchcriteria.BuilderFunc(func(o *searchcriteria.SearchCriteria) (*searchcriteria.SearchCriteria, error) {
		return &searchcriteria.SearchCriteria{PageSize: o.PageSize}, nil
	})
	b := PreserveFilters(dropAll, NewCriteriaPreserver("", nil))

	original := searchcriteria.NewSearchCriteriaBuilder().AddFilter("stock_status", "IN_STOCK", "eq").SetPageSize(9).Create()
	got, err := b.Build(original)
	require.NoError(t, err)
	assert.Equal(t, 9, got.PageSize)
	require.Len(t, got.FilterGroups, 1)
	assert.Equal(t, "IN_STOCK", got.FilterGroups[0].Filters[0].Value)

	failing := PreserveFilters(searchcriteria.BuilderFunc(func(*searchcriteria.SearchCriteria) (*searchcriteria.SearchCriteria, error) {
		return nil, errors.New("boom")
	}), NewCriteriaPreserver("", nil))
	_, err = failing.Build(original)
	assert.EqualError(t, err, "boom")
}

// The dropped filter is recovered by the preserver and then applied by the
// processor as a join on the stock status index.
func TestStockStatus_EndToEnd(t *testing.T) {
	original := &searchcriteria.SearchCriteria{FilterGroups: []*searchcriteria.FilterGroup{
		{Filters: []*searchcriteria.Filter{{Field: "stock_status", Value: "IN_STOCK", ConditionType: "eq"}}},
	}}
	rebuilt := &searchcriteria.SearchCriteria{}

	result := NewCriteriaPreserver("", nil).AfterBuild(rebuilt, original)
	require.Len(t, result.FilterGroups, 1)
	require.Len(t, result.FilterGroups[0].Filters, 1)
	assert.Equal(t, *original.FilterGroups[0].Filters[0], *result.FilterGroups[0].Filters[0])

	processor := collection.NewFilterProcessor(map[string]collection.CustomFilter{
		FieldStockStatus: NewStockStatusFilter(nil),
	}, nil, nil)
	c := collection.NewProductCollection(nil)
	require.NoError(t, processor.Process(result, c))

	assert.Equal(t, 1, countJoins(c))
	assert.Equal(t, "cataloginventory_stock_status", c.Select().FromPart()[JoinAlias].TableName)
	where := c.Select().WherePart()
	require.Len(t, where, 1)
	assert.Equal(t, "stock_status_filter.stock_status = ?", where[0].Expr)
	assert.Equal(t, []interface{}{1}, where[0].Args)
}
