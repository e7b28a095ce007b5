// Package inventory maintains the cataloginventory_stock_status index the stock
// status filter reads.
package inventory

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	inventoryEntity "stockfilter.GO/model/entity/inventory"
	productEntity "stockfilter.GO/model/entity/product"
	inventoryRepo "stockfilter.GO/model/repository/inventory"
)

// ReindexOptions configures a reindex run.
type ReindexOptions struct {
	WebsiteID uint16
	StockID   uint16
	BatchSize int
}

// ReindexResult holds counters and timing from a reindex run.
type ReindexResult struct {
	Indexed    int           `json:"indexed"`
	InStock    int           `json:"in_stock"`
	OutOfStock int           `json:"out_of_stock"`
	TotalTime  time.Duration `json:"total_time"`
}

// Reindex rebuilds stock status rows from cataloginventory_stock_item.
// Items that do not manage stock are always in stock.
func Reindex(ctx context.Context, db *gorm.DB, opts ReindexOptions) (*ReindexResult, error) {
	start := time.Now()
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}
	if opts.StockID == 0 {
		opts.StockID = inventoryEntity.DefaultStockID
	}

	repo := inventoryRepo.NewStockStatusRepository(db.WithContext(ctx))
	result := &ReindexResult{}
	var lastID uint
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		var items []productEntity.StockItem
		err := db.WithContext(ctx).
			Where("item_id > ? AND stock_id = ?", lastID, opts.StockID).
			Order("item_id").
			Limit(opts.BatchSize).
			Find(&items).Error
		if err != nil {
			return result, fmt.Errorf("load stock items: %w", err)
		}
		if len(items) == 0 {
			break
		}

		rows := make([]inventoryEntity.StockStatus, 0, len(items))
		for _, it := range items {
			row := StatusFromItem(it, opts.WebsiteID)
			if row.StockStatus == inventoryEntity.StatusInStock {
				result.InStock++
			} else {
				result.OutOfStock++
			}
			rows = append(rows, row)
		}
		if err := repo.Upsert(rows, opts.BatchSize); err != nil {
			return result, err
		}
		result.Indexed += len(rows)
		lastID = items[len(items)-1].ItemID
	}

	result.TotalTime = time.Since(start)
	return result, nil
}

// StatusFromItem derives the indexed stock status row of one stock item.
func StatusFromItem(it productEntity.StockItem, websiteID uint16) inventoryEntity.StockStatus {
	status := inventoryEntity.StatusOutOfStock
	if it.ManageStock == 0 || it.IsInStock == 1 {
		status = inventoryEntity.StatusInStock
	}
	return inventoryEntity.StockStatus{
		ProductID:   it.ProductID,
		WebsiteID:   websiteID,
		StockID:     it.StockID,
		Qty:         it.Qty,
		StockStatus: status,
	}
}
