package product

import "time"

// Product represents catalog_product_entity.
type Product struct {
	EntityID       uint      `gorm:"column:entity_id;primaryKey;autoIncrement" json:"entity_id"`
	AttributeSetID uint16    `gorm:"column:attribute_set_id;not null;default:4" json:"attribute_set_id"`
	TypeID         string    `gorm:"column:type_id;type:varchar(32);not null;default:simple" json:"type_id"`
	SKU            string    `gorm:"column:sku;type:varchar(64);uniqueIndex" json:"sku"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "catalog_product_entity"
}

// Varchar represents catalog_product_entity_varchar (name, url_key, ...).
type Varchar struct {
	ValueID     uint   `gorm:"column:value_id;primaryKey;autoIncrement" json:"value_id"`
	AttributeID uint16 `gorm:"column:attribute_id;not null;uniqueIndex:idx_product_varchar_unq,priority:1" json:"attribute_id"`
	StoreID     uint16 `gorm:"column:store_id;not null;default:0;uniqueIndex:idx_product_varchar_unq,priority:2" json:"store_id"`
	EntityID    uint   `gorm:"column:entity_id;not null;uniqueIndex:idx_product_varchar_unq,priority:3" json:"entity_id"`
	Value       string `gorm:"column:value;type:varchar(255)" json:"value"`
}

func (Varchar) TableName() string {
	return "catalog_product_entity_varchar"
}

// CategoryProduct represents catalog_category_product.
type CategoryProduct struct {
	EntityID   uint `gorm:"column:entity_id;primaryKey;autoIncrement" json:"entity_id"`
	CategoryID uint `gorm:"column:category_id;not null;index" json:"category_id"`
	ProductID  uint `gorm:"column:product_id;not null;index" json:"product_id"`
	Position   int  `gorm:"column:position;not null;default:0" json:"position"`
}

func (CategoryProduct) TableName() string {
	return "catalog_category_product"
}
