package entity

// Product entity type id in eav_entity_type.
const ProductEntityTypeID uint16 = 4

// EavAttribute represents eav_attribute.
type EavAttribute struct {
	AttributeID   uint16 `gorm:"column:attribute_id;primaryKey;autoIncrement" json:"attribute_id"`
	EntityTypeID  uint16 `gorm:"column:entity_type_id;not null" json:"entity_type_id"`
	AttributeCode string `gorm:"column:attribute_code;type:varchar(255);not null" json:"attribute_code"`
	BackendType   string `gorm:"column:backend_type;type:varchar(8);not null;default:static" json:"backend_type"`
}

func (EavAttribute) TableName() string {
	return "eav_attribute"
}
