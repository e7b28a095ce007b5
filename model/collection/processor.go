package collection

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"stockfilter.GO/model/api/searchcriteria"
)

// CustomFilter applies one filter to a collection. It returns false when the filter
// could not be applied.
type CustomFilter interface {
	Apply(filter *searchcriteria.Filter, c *Collection) bool
}

// CustomFilterFunc adapts a function to CustomFilter.
type CustomFilterFunc func(filter *searchcriteria.Filter, c *Collection) bool

func (fn CustomFilterFunc) Apply(filter *searchcriteria.Filter, c *Collection) bool {
	return fn(filter, c)
}

// FilterProcessor applies search criteria filters to a collection.
// Fields with a registered custom filter are delegated to it; the rest become
// column conditions, OR'd within a group and AND'd across groups.
type FilterProcessor struct {
	customFilters map[string]CustomFilter
	fieldMapping  map[string]string
	logger        *zap.Logger
}

// NewFilterProcessor builds a processor. fieldMapping maps a filter field to a
// column expression; unmapped fields map to main-alias.field.
func NewFilterProcessor(customFilters map[string]CustomFilter, fieldMapping map[string]string, logger *zap.Logger) *FilterProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FilterProcessor{customFilters: customFilters, fieldMapping: fieldMapping, logger: logger}
}

// HasField reports whether the processor can filter on field.
func (p *FilterProcessor) HasField(field string) bool {
	if _, ok := p.customFilters[field]; ok {
		return true
	}
	_, ok := p.fieldMapping[field]
	return ok
}

// Column resolves a filter field to its column expression.
func (p *FilterProcessor) Column(c *Collection, field string) string {
	if col, ok := p.fieldMapping[field]; ok {
		return col
	}
	return c.Select().MainAlias() + "." + field
}

// Process applies every filter group in criteria to c.
func (p *FilterProcessor) Process(criteria *searchcriteria.SearchCriteria, c *Collection) error {
	for _, group := range criteria.GetFilterGroups() {
		if err := p.addFilterGroup(group, c); err != nil {
			return err
		}
	}
	return nil
}

func (p *FilterProcessor) addFilterGroup(group *searchcriteria.FilterGroup, c *Collection) error {
	var (
		conds []string
		args  []interface{}
	)
	for _, f := range group.GetFilters() {
		if f == nil {
			continue
		}
		if custom, ok := p.customFilters[f.Field]; ok {
			if !custom.Apply(f, c) {
				p.logger.Warn("custom filter not applied", zap.String("field", f.Field))
			}
			continue
		}
		expr, a, err := ConditionSQL(p.Column(c, f.Field), f.GetConditionType(), f.Value)
		if err != nil {
			return fmt.Errorf("filter %s: %w", f.Field, err)
		}
		conds = append(conds, expr)
		args = append(args, a...)
	}
	switch len(conds) {
	case 0:
	case 1:
		c.Select().Where(conds[0], args...)
	default:
		c.Select().Where("("+strings.Join(conds, ") OR (")+")", args...)
	}
	return nil
}
