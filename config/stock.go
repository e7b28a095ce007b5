package config

import "time"

// StockFilter configures the stock status filter and its supporting jobs.
type StockFilter struct {
	Field           string
	WebsiteID       uint16
	StockID         uint16
	SearchCacheTTL  time.Duration
	ReindexSchedule string
	ReindexBatch    int
}

// LoadStockFilterConfig reads STOCK_FILTER_FIELD, STOCK_WEBSITE_ID, STOCK_ID,
// SEARCH_CACHE_TTL (seconds), STOCK_REINDEX_SCHEDULE and STOCK_REINDEX_BATCH.
func LoadStockFilterConfig() StockFilter {
	return StockFilter{
		Field:           envOrDefault("STOCK_FILTER_FIELD", "stock_status"),
		WebsiteID:       uint16(envInt("STOCK_WEBSITE_ID", 0)),
		StockID:         uint16(envInt("STOCK_ID", 1)),
		SearchCacheTTL:  time.Duration(envInt("SEARCH_CACHE_TTL", 60)) * time.Second,
		ReindexSchedule: envOrDefault("STOCK_REINDEX_SCHEDULE", "*/15 * * * *"),
		ReindexBatch:    envInt("STOCK_REINDEX_BATCH", 500),
	}
}

// Elastic configures the Elasticsearch catalog search.
type Elastic struct {
	Host        string
	IndexPrefix string
}

// LoadElasticConfig reads ELASTICSEARCH_HOST and ELASTICSEARCH_INDEX_PREFIX.
// An empty Host disables Elasticsearch.
func LoadElasticConfig() Elastic {
	return Elastic{
		Host:        envOrDefault("ELASTICSEARCH_HOST", ""),
		IndexPrefix: envOrDefault("ELASTICSEARCH_INDEX_PREFIX", "magento2"),
	}
}
