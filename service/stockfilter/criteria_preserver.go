package stockfilter

import (
	"go.uber.org/zap"

	"stockfilter.GO/model/api/searchcriteria"
)

// CriteriaPreserver copies filters on one field from the requested criteria into the
// rebuilt criteria.
//
// Recovered filters always go into a new group appended to the result. If the result
// already has its own group for the field, the two groups are AND'd.
type CriteriaPreserver struct {
	field  string
	logger *zap.Logger
}

// NewCriteriaPreserver preserves filters on field (stock_status when empty).
func NewCriteriaPreserver(field string, logger *zap.Logger) *CriteriaPreserver {
	if field == "" {
		field = FieldStockStatus
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CriteriaPreserver{field: field, logger: logger}
}

// Field returns the preserved field name.
func (p *CriteriaPreserver) Field() string {
	return p.field
}

// AfterBuild re-adds the original's filters on the preserved field to result and
// returns result. Filters are cloned in order into one OR group.
func (p *CriteriaPreserver) AfterBuild(result, original *searchcriteria.SearchCriteria) *searchcriteria.SearchCriteria {
	found := original.FiltersByField(p.field)
	if len(found) == 0 || result == nil {
		return result
	}

	fb := searchcriteria.NewFilterBuilder()
	gb := searchcriteria.NewFilterGroupBuilder()
	for _, f := range found {
		gb.AddFilter(fb.
			SetField(f.Field).
			SetValue(f.Clone().Value).
			SetConditionType(f.ConditionType).
			Create())
	}

	groups := append(result.GetFilterGroups(), gb.Create())
	result.SetFilterGroups(groups)

	p.logger.Debug("re-injected dropped filters",
		zap.String("field", p.field),
		zap.Int("count", len(found)),
		zap.Int("groups", len(groups)))
	return result
}

// PreserveFilters decorates next so that every criteria it builds keeps the
// preserver's field filters from the original criteria.
func PreserveFilters(next searchcriteria.Builder, p *CriteriaPreserver) searchcriteria.Builder {
	return searchcriteria.BuilderFunc(func(original *searchcriteria.SearchCriteria) (*searchcriteria.SearchCriteria, error) {
		result, err := next.Build(original)
		if err != nil {
			return nil, err
		}
		return p.AfterBuild(result, original), nil
	})
}
