// Package stockfilter restores the stock_status filter on product searches.
//
// The product collection criteria builder rebuilds criteria from a fixed field list and
// loses stock_status along the way. CriteriaPreserver puts those filters back after the
// build, and StockStatusFilter turns them into a join on cataloginventory_stock_status.
package stockfilter

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"stockfilter.GO/model/entity/inventory"
)

// NormalizeStockStatus maps a filter value to 1 (in stock) or 0 (out of stock).
//
// IN_STOCK and "1" (trimmed, any case) give 1; OUT_OF_STOCK and "0" give 0. Other
// numeric values give 1 only when their integer part is exactly 1. Anything else,
// including unknown strings, gives 0.
func NormalizeStockStatus(value interface{}) int {
	if s, ok := value.(string); ok {
		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "IN_STOCK", "1":
			return int(inventory.StatusInStock)
		case "OUT_OF_STOCK", "0":
			return int(inventory.StatusOutOfStock)
		}
	}
	n, ok := toInt(value)
	if ok && n == 1 {
		return int(inventory.StatusInStock)
	}
	return int(inventory.StatusOutOfStock)
}

// toInt truncates numeric values and numeric strings to an integer.
func toInt(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return clampUint(uint64(v)), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return clampUint(v), true
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case json.Number:
		return parseNumeric(v.String())
	case string:
		return parseNumeric(v)
	}
	return 0, false
}

func parseNumeric(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return floatToInt(f)
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, true
	}
	return int64(f), true
}

func clampUint(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
