package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockfilter.GO/core/testdb"
	productEntity "stockfilter.GO/model/entity/product"
)

func TestProductRepository_FetchByIDs_FetchIDsBySKU(t *testing.T) {
	db := testdb.Open(t)
	a := testdb.SeedProduct(t, db, "SKU-A", nil, "")
	b := testdb.SeedProduct(t, db, "SKU-B", nil, "")
	repo := NewProductRepository(db)

	byID, err := repo.FetchByIDs([]uint{a.EntityID, b.EntityID, 999})
	require.NoError(t, err)
	assert.Len(t, byID, 2)
	assert.Equal(t, "SKU-B", byID[b.EntityID].SKU)

	bySKU, err := repo.FetchIDsBySKU([]string{"SKU-A", "NOPE"})
	require.NoError(t, err)
	assert.Equal(t, map[string]uint{"SKU-A": a.EntityID}, bySKU)
}

func TestProductRepository_FetchVarcharAttribute_StoreFallback(t *testing.T) {
	db := testdb.Open(t)
	a := testdb.SeedProduct(t, db, "SKU-A", nil, "Default A")
	b := testdb.SeedProduct(t, db, "SKU-B", nil, "Default B")

	var nameAttr struct{ AttributeID uint16 }
	require.NoError(t, db.Table("eav_attribute").Select("attribute_id").Where("attribute_code = ?", "name").Scan(&nameAttr).Error)
	require.NoError(t, db.Create(&productEntity.Varchar{AttributeID: nameAttr.AttributeID, StoreID: 2, EntityID: b.EntityID, Value: "Store B"}).Error)

	repo := NewProductRepository(db)
	names, err := repo.FetchVarcharAttribute([]uint{a.EntityID, b.EntityID}, "name", 2)
	require.NoError(t, err)
	assert.Equal(t, "Default A", names[a.EntityID])
	assert.Equal(t, "Store B", names[b.EntityID])

	names, err = repo.FetchVarcharAttribute([]uint{b.EntityID}, "name", 0)
	require.NoError(t, err)
	assert.Equal(t, "Default B", names[b.EntityID])
}
