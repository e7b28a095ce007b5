package resolvers

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowToProduct_StockStatusLabel(t *testing.T) {
	for _, v := range []interface{}{1, int32(1), uint8(1), uint16(1), float32(1), float64(1), "1"} {
		p, err := rowToProduct(map[string]interface{}{"entity_id": 5, "sku": "A", "stock_status": v})
		require.NoError(t, err)
		require.NotNil(t, p.StockStatus)
		assert.Equal(t, "IN_STOCK", *p.StockStatus, "value %#v", v)
	}
	for _, v := range []interface{}{0, int32(0), uint8(2), nil} {
		p, err := rowToProduct(map[string]interface{}{"entity_id": 5, "sku": "A", "stock_status": v})
		require.NoError(t, err)
		assert.Equal(t, "OUT_OF_STOCK", *p.StockStatus, "value %#v", v)
	}
}

func TestRowToProduct_Fields(t *testing.T) {
	p, err := rowToProduct(map[string]interface{}{
		"entity_id": float64(42),
		"sku":       "A",
		"name":      "Blue Shirt",
		"qty":       3.5,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(42), p.ID)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("42")), p.UID)
}
