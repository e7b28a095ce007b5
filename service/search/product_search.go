package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stockfilter.GO/config"
	"stockfilter.GO/model/api/searchcriteria"
	"stockfilter.GO/model/collection"
	inventoryEntity "stockfilter.GO/model/entity/inventory"
	productEntity "stockfilter.GO/model/entity/product"
	inventoryRepo "stockfilter.GO/model/repository/inventory"
	productRepo "stockfilter.GO/model/repository/product"
	"stockfilter.GO/service/stockfilter"
)

const (
	DefaultPageSize = 20
	maxElasticHits  = 1000
)

// Result is one page of products. Items are flat attribute maps.
type Result struct {
	Items       []map[string]interface{} `json:"items"`
	TotalCount  int64                    `json:"total_count"`
	PageSize    int                      `json:"page_size"`
	CurrentPage int                      `json:"current_page"`
}

// ProductSearch runs criteria against the product collection.
type ProductSearch struct {
	db        *gorm.DB
	builder   searchcriteria.Builder
	processor *collection.FilterProcessor
	products  *productRepo.ProductRepository
	stock     *inventoryRepo.StockStatusRepository
	cache     ResultCache
	elastic   *ElasticSearch
	cfg       config.StockFilter
	logger    *zap.Logger
}

type Option func(*ProductSearch)

func WithLogger(logger *zap.Logger) Option {
	return func(s *ProductSearch) { s.logger = logger }
}

// WithCache enables result caching for cfg.SearchCacheTTL.
func WithCache(c ResultCache) Option {
	return func(s *ProductSearch) { s.cache = c }
}

func WithElastic(es *ElasticSearch) Option {
	return func(s *ProductSearch) { s.elastic = es }
}

// WithBuilder replaces the inner criteria builder. Stock status filters are still
// preserved around it.
func WithBuilder(b searchcriteria.Builder) Option {
	return func(s *ProductSearch) { s.builder = b }
}

// New wires the product search with the stock status filter registered on cfg.Field.
func New(db *gorm.DB, cfg config.StockFilter, opts ...Option) *ProductSearch {
	if cfg.Field == "" {
		cfg.Field = stockfilter.FieldStockStatus
	}
	if cfg.StockID == 0 {
		cfg.StockID = inventoryEntity.DefaultStockID
	}
	s := &ProductSearch{
		db:       db,
		builder:  NewProductCollectionSearchCriteriaBuilder(),
		products: productRepo.NewProductRepository(db),
		stock:    inventoryRepo.NewStockStatusRepository(db),
		cfg:      cfg,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.processor = collection.NewFilterProcessor(map[string]collection.CustomFilter{
		cfg.Field:     stockfilter.NewStockStatusFilter(s.logger, stockfilter.WithStock(cfg.WebsiteID, cfg.StockID)),
		"category_id": NewCategoryFilter(s.logger),
		"name":        NewAttributeFilter("name", s.logger),
		"url_key":     NewAttributeFilter("url_key", s.logger),
	}, nil, s.logger)
	s.builder = stockfilter.PreserveFilters(s.builder, stockfilter.NewCriteriaPreserver(cfg.Field, s.logger))
	return s
}

// Build returns the criteria the collection will be filtered with.
func (s *ProductSearch) Build(original *searchcriteria.SearchCriteria) (*searchcriteria.SearchCriteria, error) {
	criteria, err := s.builder.Build(original)
	if err != nil {
		return nil, fmt.Errorf("build criteria: %w", err)
	}
	return criteria, nil
}

// Search returns one page of products matching original for a store.
func (s *ProductSearch) Search(ctx context.Context, storeID uint16, original *searchcriteria.SearchCriteria) (*Result, error) {
	criteria, err := s.Build(original)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, storeID, criteria)
}

// SearchText narrows Search by full text. Elasticsearch resolves the text when
// configured; otherwise the text matches the SKU.
func (s *ProductSearch) SearchText(ctx context.Context, storeID uint16, text string, original *searchcriteria.SearchCriteria) (*Result, error) {
	criteria, err := s.Build(original)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return s.run(ctx, storeID, criteria)
	}

	fb := searchcriteria.NewFilterBuilder()
	if s.elastic != nil {
		ids, _, err := s.elastic.Search(ctx, storeID, text, criteria, maxElasticHits)
		if err == nil {
			group := searchcriteria.NewFilterGroupBuilder().
				AddFilter(fb.SetField("entity_id").SetValue(ids).SetConditionType(searchcriteria.ConditionIn).Create()).
				Create()
			criteria.SetFilterGroups(append(criteria.GetFilterGroups(), group))
			return s.run(ctx, storeID, criteria)
		}
		s.logger.Warn("elasticsearch search failed, falling back to sku match", zap.Error(err))
	}
	group := searchcriteria.NewFilterGroupBuilder().
		AddFilter(fb.SetField("sku").SetValue("%" + text + "%").SetConditionType(searchcriteria.ConditionLike).Create()).
		Create()
	criteria.SetFilterGroups(append(criteria.GetFilterGroups(), group))
	return s.run(ctx, storeID, criteria)
}

// InvalidateCache drops every cached search result.
func (s *ProductSearch) InvalidateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Flush(ctx)
}

func (s *ProductSearch) run(ctx context.Context, storeID uint16, criteria *searchcriteria.SearchCriteria) (*Result, error) {
	key := CacheKey(storeID, criteria)
	if s.cache != nil {
		if r, ok := s.cache.Get(ctx, key); ok {
			return r, nil
		}
	}

	c := collection.NewProductCollection(s.db)
	if err := s.processor.Process(criteria, c); err != nil {
		return nil, fmt.Errorf("process filters: %w", err)
	}
	total, err := c.Count(ctx)
	if err != nil {
		return nil, err
	}

	pageSize := criteria.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	currentPage := criteria.CurrentPage
	if currentPage <= 0 {
		currentPage = 1
	}
	s.applySortOrders(c, criteria.SortOrders)
	c.SetPage(currentPage, pageSize)

	var rows []productEntity.Product
	if err := c.Load(ctx, &rows); err != nil {
		return nil, err
	}
	items, err := s.enrich(storeID, rows)
	if err != nil {
		return nil, err
	}

	r := &Result{Items: items, TotalCount: total, PageSize: pageSize, CurrentPage: currentPage}
	if s.cache != nil && s.cfg.SearchCacheTTL > 0 {
		s.cache.Set(ctx, key, r, s.cfg.SearchCacheTTL)
	}
	return r, nil
}

// sortColumns are the catalog_product_entity columns a collection may be ordered by.
var sortColumns = map[string]struct{}{
	"entity_id": {}, "sku": {}, "type_id": {}, "attribute_set_id": {}, "created_at": {}, "updated_at": {},
}

// applySortOrders orders by known main table columns only; entity_id breaks ties.
func (s *ProductSearch) applySortOrders(c *collection.Collection, orders []*searchcriteria.SortOrder) {
	alias := c.Select().MainAlias()
	byID := false
	for _, so := range orders {
		if so == nil {
			continue
		}
		if _, ok := sortColumns[so.Field]; !ok {
			s.logger.Debug("ignoring sort on unknown field", zap.String("field", so.Field))
			continue
		}
		dir := searchcriteria.SortASC
		if strings.EqualFold(so.Direction, searchcriteria.SortDESC) {
			dir = searchcriteria.SortDESC
		}
		c.Select().Order(alias, so.Field, dir)
		byID = byID || so.Field == collection.ProductIDField
	}
	if !byID {
		c.Select().Order(alias, collection.ProductIDField, searchcriteria.SortASC)
	}
}

func (s *ProductSearch) enrich(storeID uint16, rows []productEntity.Product) ([]map[string]interface{}, error) {
	items := make([]map[string]interface{}, 0, len(rows))
	if len(rows) == 0 {
		return items, nil
	}
	ids := make([]uint, len(rows))
	for i, p := range rows {
		ids[i] = p.EntityID
	}
	names, err := s.products.FetchVarcharAttribute(ids, "name", storeID)
	if err != nil {
		return nil, fmt.Errorf("fetch names: %w", err)
	}
	urlKeys, err := s.products.FetchVarcharAttribute(ids, "url_key", storeID)
	if err != nil {
		return nil, fmt.Errorf("fetch url keys: %w", err)
	}
	statuses, err := s.stock.BatchGet(ids, s.cfg.WebsiteID, s.cfg.StockID)
	if err != nil {
		return nil, fmt.Errorf("fetch stock statuses: %w", err)
	}

	for _, p := range rows {
		item := map[string]interface{}{
			"entity_id":        p.EntityID,
			"sku":              p.SKU,
			"type_id":          p.TypeID,
			"attribute_set_id": p.AttributeSetID,
			"stock_status":     int(inventoryEntity.StatusOutOfStock),
			"qty":              float64(0),
		}
		if v, ok := names[p.EntityID]; ok {
			item["name"] = v
		}
		if v, ok := urlKeys[p.EntityID]; ok {
			item["url_key"] = v
		}
		if st, ok := statuses[p.EntityID]; ok {
			item["stock_status"] = int(st.StockStatus)
			item["qty"] = st.Qty
		}
		items = append(items, item)
	}
	return items, nil
}
