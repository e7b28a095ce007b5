package searchcriteria

// FilterBuilder assembles a Filter. Create resets the builder.
type FilterBuilder struct {
	field     string
	value     interface{}
	condition string
}

func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{}
}

func (b *FilterBuilder) SetField(field string) *FilterBuilder {
	b.field = field
	return b
}

func (b *FilterBuilder) SetValue(value interface{}) *FilterBuilder {
	b.value = value
	return b
}

func (b *FilterBuilder) SetConditionType(condition string) *FilterBuilder {
	b.condition = condition
	return b
}

func (b *FilterBuilder) Create() *Filter {
	f := &Filter{Field: b.field, Value: b.value, ConditionType: b.condition}
	*b = FilterBuilder{}
	return f
}

// FilterGroupBuilder collects filters into one group. Create resets the builder.
type FilterGroupBuilder struct {
	filters []*Filter
}

func NewFilterGroupBuilder() *FilterGroupBuilder {
	return &FilterGroupBuilder{}
}

func (b *FilterGroupBuilder) AddFilter(f *Filter) *FilterGroupBuilder {
	b.filters = append(b.filters, f)
	return b
}

func (b *FilterGroupBuilder) SetFilters(filters []*Filter) *FilterGroupBuilder {
	b.filters = append([]*Filter(nil), filters...)
	return b
}

func (b *FilterGroupBuilder) Create() *FilterGroup {
	g := &FilterGroup{Filters: b.filters}
	b.filters = nil
	return g
}

// SearchCriteriaBuilder assembles criteria. Every AddFilter call opens a new group,
// so separate filters are AND'd.
type SearchCriteriaBuilder struct {
	groups      []*FilterGroup
	sortOrders  []*SortOrder
	pageSize    int
	currentPage int
	requestName string
}

func NewSearchCriteriaBuilder() *SearchCriteriaBuilder {
	return &SearchCriteriaBuilder{}
}

func (b *SearchCriteriaBuilder) AddFilter(field string, value interface{}, condition string) *SearchCriteriaBuilder {
	f := NewFilterBuilder().SetField(field).SetValue(value).SetConditionType(condition).Create()
	b.groups = append(b.groups, &FilterGroup{Filters: []*Filter{f}})
	return b
}

// AddFilterGroup appends a group as is (its filters are OR'd).
func (b *SearchCriteriaBuilder) AddFilterGroup(g *FilterGroup) *SearchCriteriaBuilder {
	b.groups = append(b.groups, g)
	return b
}

func (b *SearchCriteriaBuilder) AddSortOrder(field, direction string) *SearchCriteriaBuilder {
	b.sortOrders = append(b.sortOrders, &SortOrder{Field: field, Direction: direction})
	return b
}

func (b *SearchCriteriaBuilder) SetPageSize(n int) *SearchCriteriaBuilder {
	b.pageSize = n
	return b
}

func (b *SearchCriteriaBuilder) SetCurrentPage(n int) *SearchCriteriaBuilder {
	b.currentPage = n
	return b
}

func (b *SearchCriteriaBuilder) SetRequestName(name string) *SearchCriteriaBuilder {
	b.requestName = name
	return b
}

func (b *SearchCriteriaBuilder) Create() *SearchCriteria {
	c := &SearchCriteria{
		FilterGroups: b.groups,
		SortOrders:   b.sortOrders,
		PageSize:     b.pageSize,
		CurrentPage:  b.currentPage,
		RequestName:  b.requestName,
	}
	*b = SearchCriteriaBuilder{}
	return c
}
