package search

import (
	"fmt"

	"go.uber.org/zap"

	"stockfilter.GO/model/api/searchcriteria"
	"stockfilter.GO/model/collection"
	entity "stockfilter.GO/model/entity"
)

const (
	categoryAlias = "category_filter"
	categoryTable = "catalog_category_product"
	varcharTable  = "catalog_product_entity_varchar"
)

// CategoryFilter restricts products to the categories in the filter value.
type CategoryFilter struct {
	logger *zap.Logger
}

func NewCategoryFilter(logger *zap.Logger) *CategoryFilter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryFilter{logger: logger}
}

func (f *CategoryFilter) Apply(filter *searchcriteria.Filter, c *collection.Collection) bool {
	sel := c.Select()
	if !sel.HasAlias(categoryAlias) {
		cond := sel.MainAlias() + ".entity_id = " + categoryAlias + ".product_id"
		if err := sel.Join(categoryTable, categoryAlias, cond); err != nil {
			f.logger.Error("category filter join", zap.Error(err))
			return false
		}
		sel.Distinct(true)
	}
	expr, args, err := collection.ConditionSQL(categoryAlias+".category_id", filter.GetConditionType(), filter.Value)
	if err != nil {
		f.logger.Error("category filter condition", zap.Error(err))
		return false
	}
	sel.Where(expr, args...)
	return true
}

// AttributeFilter filters on a varchar EAV attribute at the default store.
type AttributeFilter struct {
	code   string
	alias  string
	logger *zap.Logger
}

func NewAttributeFilter(code string, logger *zap.Logger) *AttributeFilter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttributeFilter{code: code, alias: code + "_filter", logger: logger}
}

func (f *AttributeFilter) Apply(filter *searchcriteria.Filter, c *collection.Collection) bool {
	sel := c.Select()
	if !sel.HasAlias(f.alias) {
		cond := fmt.Sprintf("%s.entity_id = %s.entity_id AND %s.store_id = 0", f.alias, sel.MainAlias(), f.alias) +
			" AND " + f.alias + ".attribute_id = (SELECT attribute_id FROM eav_attribute WHERE attribute_code = ? AND entity_type_id = ?)"
		if err := sel.Join(varcharTable, f.alias, cond, f.code, entity.ProductEntityTypeID); err != nil {
			f.logger.Error("attribute filter join", zap.String("attribute", f.code), zap.Error(err))
			return false
		}
	}
	expr, args, err := collection.ConditionSQL(f.alias+".value", filter.GetConditionType(), filter.Value)
	if err != nil {
		f.logger.Error("attribute filter condition", zap.String("attribute", f.code), zap.Error(err))
		return false
	}
	sel.Where(expr, args...)
	return true
}
