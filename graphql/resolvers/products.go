package resolvers

import (
	"context"

	"go.uber.org/zap"

	"stockfilter.GO/graphql"
	gqlmodels "stockfilter.GO/graphql/models"
	"stockfilter.GO/service/search"
)

// Products resolves the products query.
func (r *Resolver) Products(ctx context.Context, args graphql.ProductsArgs) (*gqlmodels.Products, error) {
	criteria := criteriaFromArgs(args)
	storeID := graphql.StoreIDFromContext(ctx)

	var (
		res *search.Result
		err error
	)
	if args.Search != nil && *args.Search != "" {
		res, err = r.search.SearchText(ctx, storeID, *args.Search, criteria)
	} else {
		res, err = r.search.Search(ctx, storeID, criteria)
	}
	if err != nil {
		r.logger.Error("products query failed", zap.Uint16("store_id", storeID), zap.Error(err))
		return nil, err
	}

	items := make([]*gqlmodels.Product, 0, len(res.Items))
	for _, row := range res.Items {
		p, err := rowToProduct(row)
		if err != nil {
			r.logger.Warn("skipping product row", zap.Any("entity_id", row["entity_id"]), zap.Error(err))
			continue
		}
		items = append(items, p)
	}
	return &gqlmodels.Products{
		Items:      items,
		TotalCount: int32(res.TotalCount),
		PageInfo: &gqlmodels.SearchResultPageInfo{
			CurrentPage: int32(res.CurrentPage),
			PageSize:    int32(res.PageSize),
			TotalPages:  totalPages(res.TotalCount, res.PageSize),
		},
	}, nil
}
