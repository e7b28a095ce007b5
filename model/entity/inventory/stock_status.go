package inventory

// Single-source (non-MSI) inventory constants.
const (
	DefaultStockID   uint16 = 1
	DefaultWebsiteID uint16 = 0

	StatusOutOfStock uint16 = 0
	StatusInStock    uint16 = 1
)

// StockStatus represents cataloginventory_stock_status, the indexed stock status
// the storefront filters on.
type StockStatus struct {
	ProductID   uint    `gorm:"column:product_id;primaryKey;autoIncrement:false" json:"product_id"`
	WebsiteID   uint16  `gorm:"column:website_id;primaryKey;autoIncrement:false" json:"website_id"`
	StockID     uint16  `gorm:"column:stock_id;primaryKey;autoIncrement:false" json:"stock_id"`
	Qty         float64 `gorm:"column:qty;type:decimal(12,4);not null;default:0" json:"qty"`
	StockStatus uint16  `gorm:"column:stock_status;not null;index" json:"stock_status"`
}

func (StockStatus) TableName() string {
	return "cataloginventory_stock_status"
}

// Label returns IN_STOCK or OUT_OF_STOCK.
func (s StockStatus) Label() string {
	return StatusLabel(int(s.StockStatus))
}

// StatusLabel maps 1 to IN_STOCK and anything else to OUT_OF_STOCK.
func StatusLabel(status int) string {
	if status == int(StatusInStock) {
		return "IN_STOCK"
	}
	return "OUT_OF_STOCK"
}
