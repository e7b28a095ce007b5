package searchcriteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterBuilder_CreateResets(t *testing.T) {
	b := NewFilterBuilder()
	f := b.SetField("sku").SetValue("ABC").SetConditionType(ConditionLike).Create()
	assert.Equal(t, &Filter{Field: "sku", Value: "ABC", ConditionType: ConditionLike}, f)

	empty := b.Create()
	assert.Equal(t, &Filter{}, empty)
	assert.Equal(t, ConditionEq, empty.GetConditionType())
}

func TestFilter_Clone_DoesNotAlias(t *testing.T) {
	src := &Filter{Field: "sku", Value: []string{"a", "b"}, ConditionType: ConditionIn}
	c := src.Clone()
	require.NotSame(t, src, c)
	assert.Equal(t, src, c)

	c.Value.([]string)[0] = "z"
	c.Field = "other"
	assert.Equal(t, []string{"a", "b"}, src.Value)
	assert.Equal(t, "sku", src.Field)
}

func TestFilterGroupBuilder_CreateResets(t *testing.T) {
	b := NewFilterGroupBuilder()
	g := b.AddFilter(&Filter{Field: "a"}).AddFilter(&Filter{Field: "b"}).Create()
	assert.Len(t, g.Filters, 2)
	assert.Empty(t, b.Create().Filters)
}

func TestSearchCriteriaBuilder_OneGroupPerFilter(t *testing.T) {
	c := NewSearchCriteriaBuilder().
		AddFilter("sku", "A", ConditionEq).
		AddFilter("stock_status", "IN_STOCK", ConditionEq).
		AddSortOrder("sku", SortDESC).
		SetPageSize(5).
		SetCurrentPage(2).
		Create()

	require.Len(t, c.FilterGroups, 2)
	assert.Equal(t, "stock_status", c.FilterGroups[1].Filters[0].Field)
	assert.Equal(t, 5, c.PageSize)
	assert.Equal(t, 2, c.CurrentPage)
	assert.Equal(t, SortDESC, c.SortOrders[0].Direction)
}

func TestSearchCriteria_FiltersByField(t *testing.T) {
	c := &SearchCriteria{FilterGroups: []*FilterGroup{
		{Filters: []*Filter{{Field: "stock_status", Value: "1"}, {Field: "sku", Value: "x"}}},
		{Filters: []*Filter{{Field: "stock_status", Value: "1"}}},
		nil,
	}}
	got := c.FiltersByField("stock_status")
	assert.Len(t, got, 2)
	assert.Empty(t, c.FiltersByField("missing"))

	var nilCriteria *SearchCriteria
	assert.Empty(t, nilCriteria.FiltersByField("stock_status"))
}

func TestBuilderFunc(t *testing.T) {
	var b Builder = BuilderFunc(func(o *SearchCriteria) (*SearchCriteria, error) {
		return &SearchCriteria{PageSize: o.PageSize * 2}, nil
	})
	out, err := b.Build(&SearchCriteria{PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 6, out.PageSize)
}
