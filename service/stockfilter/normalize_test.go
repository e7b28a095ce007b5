package stockfilter

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStockStatus_InStock(t *testing.T) {
	for _, v := range []interface{}{"IN_STOCK", "in_stock", " IN_STOCK ", "1", "\t1\n", 1, int64(1), uint8(1), 1.0, float32(1), "1.0", " 1e0 ", json.Number("1")} {
		assert.Equal(t, 1, NormalizeStockStatus(v), "value %#v", v)
	}
}

func TestNormalizeStockStatus_OutOfStock(t *testing.T) {
	for _, v := range []interface{}{"OUT_OF_STOCK", "out_of_stock", "0", "", "  ", "yes", "IN STOCK"} {
		assert.Equal(t, 0, NormalizeStockStatus(v), "value %#v", v)
	}
}

func TestNormalizeStockStatus_NumericOnlyExactOne(t *testing.T) {
	for _, v := range []interface{}{0, 2, -1, uint(7), int64(-1), 0.5, "2", "-1", math.NaN(), math.Inf(1), "Inf", "0x1"} {
		assert.Equal(t, 0, NormalizeStockStatus(v), "value %#v", v)
	}
	// integer part is what counts
	assert.Equal(t, 1, NormalizeStockStatus(1.9))
}

func TestNormalizeStockStatus_NonScalar(t *testing.T) {
	for _, v := range []interface{}{nil, true, false, []string{"IN_STOCK"}, []interface{}{1}, map[string]int{"a": 1}, struct{}{}, &struct{ V int }{1}} {
		assert.Equal(t, 0, NormalizeStockStatus(v), "value %#v", v)
	}
}
