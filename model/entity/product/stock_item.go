package product

// StockItem represents cataloginventory_stock_item.
type StockItem struct {
	ItemID      uint    `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id"`
	ProductID   uint    `gorm:"column:product_id;not null;uniqueIndex:idx_stock_item_product_stock,priority:1" json:"product_id"`
	StockID     uint16  `gorm:"column:stock_id;not null;default:1;uniqueIndex:idx_stock_item_product_stock,priority:2" json:"stock_id"`
	WebsiteID   uint16  `gorm:"column:website_id;not null;default:0" json:"website_id"`
	Qty         float64 `gorm:"column:qty;type:decimal(12,4)" json:"qty"`
	IsInStock   uint16  `gorm:"column:is_in_stock;not null;default:0" json:"is_in_stock"`
	ManageStock uint16  `gorm:"column:manage_stock;not null;default:1" json:"manage_stock"`
}

func (StockItem) TableName() string {
	return "cataloginventory_stock_item"
}
