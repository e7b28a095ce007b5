package inventory

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	inventoryEntity "stockfilter.GO/model/entity/inventory"
)

// StockStatusRepository reads and writes cataloginventory_stock_status.
type StockStatusRepository struct {
	db *gorm.DB
}

func NewStockStatusRepository(db *gorm.DB) *StockStatusRepository {
	return &StockStatusRepository{db: db}
}

// Get returns the stock status of a product for a website/stock pair.
func (r *StockStatusRepository) Get(productID uint, websiteID, stockID uint16) (*inventoryEntity.StockStatus, error) {
	var s inventoryEntity.StockStatus
	err := r.db.Where("product_id = ? AND website_id = ? AND stock_id = ?", productID, websiteID, stockID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// BatchGet fetches statuses for many products in one query, keyed by product_id.
func (r *StockStatusRepository) BatchGet(productIDs []uint, websiteID, stockID uint16) (map[uint]inventoryEntity.StockStatus, error) {
	out := make(map[uint]inventoryEntity.StockStatus, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	var rows []inventoryEntity.StockStatus
	err := r.db.Where("website_id = ? AND stock_id = ? AND product_id IN ?", websiteID, stockID, productIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, s := range rows {
		out[s.ProductID] = s
	}
	return out, nil
}

// Upsert inserts or updates rows on (product_id, website_id, stock_id), writing
// qty and stock_status.
func (r *StockStatusRepository) Upsert(rows []inventoryEntity.StockStatus, batchSize int) error {
	return r.upsert(rows, batchSize, "qty", "stock_status")
}

// UpsertStatus is Upsert that leaves the stored qty of existing rows untouched.
// New rows are inserted with the qty they carry.
func (r *StockStatusRepository) UpsertStatus(rows []inventoryEntity.StockStatus, batchSize int) error {
	return r.upsert(rows, batchSize, "stock_status")
}

func (r *StockStatusRepository) upsert(rows []inventoryEntity.StockStatus, batchSize int, columns ...string) error {
	if len(rows) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "website_id"}, {Name: "stock_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}
	if err := r.db.Clauses(upsert).CreateInBatches(rows, batchSize).Error; err != nil {
		return fmt.Errorf("stock status upsert: %w", err)
	}
	return nil
}

// CountByStatus returns the number of products per stock status.
func (r *StockStatusRepository) CountByStatus(websiteID, stockID uint16) (map[uint16]int64, error) {
	type countRow struct {
		StockStatus uint16 `gorm:"column:stock_status"`
		Total       int64  `gorm:"column:total"`
	}
	var rows []countRow
	err := r.db.Model(&inventoryEntity.StockStatus{}).
		Select("stock_status, COUNT(*) AS total").
		Where("website_id = ? AND stock_id = ?", websiteID, stockID).
		Group("stock_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint16]int64, len(rows))
	for _, row := range rows {
		out[row.StockStatus] = row.Total
	}
	return out, nil
}
