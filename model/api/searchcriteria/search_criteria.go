// Package searchcriteria holds the product search criteria model: filters, filter
// groups and the criteria that combine them.
//
// Filters inside a FilterGroup are combined with OR; FilterGroups inside
// SearchCriteria are combined with AND.
package searchcriteria

// Condition types understood by the collection filter processor.
const (
	ConditionEq      = "eq"
	ConditionNeq     = "neq"
	ConditionLike    = "like"
	ConditionNLike   = "nlike"
	ConditionIn      = "in"
	ConditionNin     = "nin"
	ConditionGt      = "gt"
	ConditionGteq    = "gteq"
	ConditionLt      = "lt"
	ConditionLteq    = "lteq"
	ConditionNull    = "null"
	ConditionNotNull = "notnull"
)

const (
	SortASC  = "ASC"
	SortDESC = "DESC"
)

// Filter is one (field, value, condition) comparison.
type Filter struct {
	Field         string      `json:"field"`
	Value         interface{} `json:"value"`
	ConditionType string      `json:"condition_type,omitempty"`
}

// GetConditionType returns the condition, defaulting to eq.
func (f *Filter) GetConditionType() string {
	if f.ConditionType == "" {
		return ConditionEq
	}
	return f.ConditionType
}

// Clone returns a copy of f. Slice values are copied so the clone never shares
// backing arrays with the source.
func (f *Filter) Clone() *Filter {
	c := *f
	switch v := f.Value.(type) {
	case []interface{}:
		c.Value = append([]interface{}(nil), v...)
	case []string:
		c.Value = append([]string(nil), v...)
	case []int:
		c.Value = append([]int(nil), v...)
	case []uint:
		c.Value = append([]uint(nil), v...)
	}
	return &c
}

// FilterGroup is a set of filters combined with OR.
type FilterGroup struct {
	Filters []*Filter `json:"filters"`
}

func (g *FilterGroup) GetFilters() []*Filter {
	if g == nil {
		return nil
	}
	return g.Filters
}

// SortOrder orders results by a field.
type SortOrder struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// SearchCriteria is a set of filter groups combined with AND, plus sort and paging.
type SearchCriteria struct {
	FilterGroups []*FilterGroup `json:"filter_groups"`
	SortOrders   []*SortOrder   `json:"sort_orders,omitempty"`
	PageSize     int            `json:"page_size,omitempty"`
	CurrentPage  int            `json:"current_page,omitempty"`
	RequestName  string         `json:"request_name,omitempty"`
}

func (c *SearchCriteria) GetFilterGroups() []*FilterGroup {
	if c == nil {
		return nil
	}
	return c.FilterGroups
}

func (c *SearchCriteria) SetFilterGroups(groups []*FilterGroup) {
	c.FilterGroups = groups
}

// FiltersByField returns every filter on field across all groups, in group order.
// Duplicates are kept.
func (c *SearchCriteria) FiltersByField(field string) []*Filter {
	var out []*Filter
	for _, g := range c.GetFilterGroups() {
		for _, f := range g.GetFilters() {
			if f != nil && f.Field == field {
				out = append(out, f)
			}
		}
	}
	return out
}

// Builder produces search criteria from the criteria a caller asked for.
type Builder interface {
	Build(original *SearchCriteria) (*SearchCriteria, error)
}

// BuilderFunc adapts a function to Builder.
type BuilderFunc func(original *SearchCriteria) (*SearchCriteria, error)

func (fn BuilderFunc) Build(original *SearchCriteria) (*SearchCriteria, error) {
	return fn(original)
}
