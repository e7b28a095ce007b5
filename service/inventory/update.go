package inventory

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	inventoryEntity "stockfilter.GO/model/entity/inventory"
	inventoryRepo "stockfilter.GO/model/repository/inventory"
	productRepo "stockfilter.GO/model/repository/product"
	"stockfilter.GO/service/stockfilter"
)

// StatusInput is the JSON input for the stock status API. StockStatus accepts any
// form the filter understands (IN_STOCK, "1", 1, ...).
type StatusInput struct {
	ProductID   uint        `json:"product_id"`
	SKU         string      `json:"sku"`
	StockStatus interface{} `json:"stock_status"`
	Qty         *float64    `json:"qty"`
}

// UpdateResult holds the result of a status update.
type UpdateResult struct {
	Updated  int      `json:"updated"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

// UpdateStatuses resolves SKUs and upserts stock status rows for one website/stock.
func UpdateStatuses(ctx context.Context, db *gorm.DB, items []StatusInput, opts ReindexOptions) (*UpdateResult, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}
	if opts.StockID == 0 {
		opts.StockID = inventoryEntity.DefaultStockID
	}
	db = db.WithContext(ctx)

	var skus []string
	for _, it := range items {
		if it.ProductID == 0 && it.SKU != "" {
			skus = append(skus, it.SKU)
		}
	}
	skuToID, err := productRepo.NewProductRepository(db).FetchIDsBySKU(skus)
	if err != nil {
		return nil, fmt.Errorf("resolve skus: %w", err)
	}

	result := &UpdateResult{}
	var withQty, statusOnly []inventoryEntity.StockStatus
	for _, it := range items {
		productID := it.ProductID
		if productID == 0 {
			if it.SKU == "" {
				result.Skipped++
				result.Warnings = append(result.Warnings, "missing product_id and sku, skipping")
				continue
			}
			id, ok := skuToID[it.SKU]
			if !ok {
				result.Skipped++
				result.Warnings = append(result.Warnings, fmt.Sprintf("sku=%s: product not found", it.SKU))
				continue
			}
			productID = id
		}
		row := inventoryEntity.StockStatus{
			ProductID:   productID,
			WebsiteID:   opts.WebsiteID,
			StockID:     opts.StockID,
			StockStatus: uint16(stockfilter.NormalizeStockStatus(it.StockStatus)),
		}
		if it.Qty == nil {
			statusOnly = append(statusOnly, row)
			continue
		}
		row.Qty = *it.Qty
		withQty = append(withQty, row)
	}

	repo := inventoryRepo.NewStockStatusRepository(db)
	if err := repo.Upsert(withQty, opts.BatchSize); err != nil {
		return nil, err
	}
	if err := repo.UpsertStatus(statusOnly, opts.BatchSize); err != nil {
		return nil, err
	}
	result.Updated = len(withQty) + len(statusOnly)
	return result, nil
}
