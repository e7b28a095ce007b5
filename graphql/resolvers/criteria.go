package resolvers

import (
	"stockfilter.GO/graphql"
	"stockfilter.GO/model/api/searchcriteria"
	"stockfilter.GO/service/stockfilter"
)

const requestName = "graphql_product_search"

// criteriaFromArgs turns products() arguments into search criteria, one filter group
// per condition.
func criteriaFromArgs(args graphql.ProductsArgs) *searchcriteria.SearchCriteria {
	b := searchcriteria.NewSearchCriteriaBuilder()
	if f := args.Filter; f != nil {
		addEqualFilter(b, "sku", f.SKU)
		addEqualFilter(b, "url_key", f.URLKey)
		addEqualFilter(b, "type_id", f.TypeID)
		addEqualFilter(b, "category_id", f.CategoryID)
		addStockStatusFilter(b, f.StockStatus)
		if f.Name != nil && f.Name.Match != nil && *f.Name.Match != "" {
			b.AddFilter("name", "%"+*f.Name.Match+"%", searchcriteria.ConditionLike)
		}
	}
	if s := args.Sort; s != nil {
		if s.EntityID != nil {
			b.AddSortOrder("entity_id", *s.EntityID)
		}
		if s.SKU != nil {
			b.AddSortOrder("sku", *s.SKU)
		}
	}
	return b.
		SetPageSize(defaultPageSize(args.PageSize)).
		SetCurrentPage(defaultCurrentPage(args.CurrentPage)).
		SetRequestName(requestName).
		Create()
}

func addEqualFilter(b *searchcriteria.SearchCriteriaBuilder, field string, in *graphql.FilterEqualTypeInput) {
	if in == nil {
		return
	}
	if in.Eq != nil {
		b.AddFilter(field, *in.Eq, searchcriteria.ConditionEq)
	}
	if vals := inValues(in.In); len(vals) > 0 {
		b.AddFilter(field, vals, searchcriteria.ConditionIn)
	}
}

// addStockStatusFilter adds eq filters only. An in list naming both statuses does
// not restrict anything and adds no filter.
func addStockStatusFilter(b *searchcriteria.SearchCriteriaBuilder, in *graphql.FilterEqualTypeInput) {
	if in == nil {
		return
	}
	if in.Eq != nil {
		b.AddFilter(stockfilter.FieldStockStatus, *in.Eq, searchcriteria.ConditionEq)
	}
	seen := make(map[int]interface{})
	for _, v := range inValues(in.In) {
		n := stockfilter.NormalizeStockStatus(v)
		if _, ok := seen[n]; !ok {
			seen[n] = v
		}
	}
	if len(seen) == 1 {
		for _, v := range seen {
			b.AddFilter(stockfilter.FieldStockStatus, v, searchcriteria.ConditionEq)
		}
	}
}

func inValues(in *[]*string) []interface{} {
	if in == nil {
		return nil
	}
	out := make([]interface{}, 0, len(*in))
	for _, v := range *in {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}
