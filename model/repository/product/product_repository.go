package product

import (
	"gorm.io/gorm"

	entity "stockfilter.GO/model/entity"
	productEntity "stockfilter.GO/model/entity/product"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FetchByIDs returns products keyed by entity_id.
func (r *ProductRepository) FetchByIDs(ids []uint) (map[uint]productEntity.Product, error) {
	out := make(map[uint]productEntity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []productEntity.Product
	if err := r.db.Where("entity_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.EntityID] = p
	}
	return out, nil
}

// FetchIDsBySKU maps SKUs to entity IDs. Unknown SKUs are absent.
func (r *ProductRepository) FetchIDsBySKU(skus []string) (map[string]uint, error) {
	out := make(map[string]uint, len(skus))
	if len(skus) == 0 {
		return out, nil
	}
	type skuRow struct {
		EntityID uint   `gorm:"column:entity_id"`
		SKU      string `gorm:"column:sku"`
	}
	var rows []skuRow
	if err := r.db.Table("catalog_product_entity").Select("entity_id, sku").Where("sku IN ?", skus).Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.SKU] = row.EntityID
	}
	return out, nil
}

// FetchVarcharAttribute returns the varchar attribute value per product for a store,
// falling back to the default store (0).
func (r *ProductRepository) FetchVarcharAttribute(ids []uint, code string, storeID uint16) (map[uint]string, error) {
	out := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	type valueRow struct {
		EntityID uint   `gorm:"column:entity_id"`
		StoreID  uint16 `gorm:"column:store_id"`
		Value    string `gorm:"column:value"`
	}
	var rows []valueRow
	err := r.db.Table("catalog_product_entity_varchar AS v").
		Select("v.entity_id, v.store_id, v.value").
		Joins("JOIN eav_attribute AS a ON a.attribute_id = v.attribute_id").
		Where("a.attribute_code = ? AND a.entity_type_id = ?", code, entity.ProductEntityTypeID).
		Where("v.entity_id IN ? AND v.store_id IN ?", ids, []uint16{0, storeID}).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.StoreID == 0 {
			if _, ok := out[row.EntityID]; !ok {
				out[row.EntityID] = row.Value
			}
		}
	}
	if storeID != 0 {
		for _, row := range rows {
			if row.StoreID == storeID {
				out[row.EntityID] = row.Value
			}
		}
	}
	return out, nil
}
