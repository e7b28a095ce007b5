package resolvers

import (
	"encoding/base64"
	"strconv"

	"github.com/mitchellh/mapstructure"

	gqlmodels "stockfilter.GO/graphql/models"
	"stockfilter.GO/model/entity/inventory"
	"stockfilter.GO/service/stockfilter"
)

func uidEncode(entityID uint) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(entityID), 10)))
}

// rowToProduct decodes a flat search row. Rows read back from a JSON cache carry
// float64 numbers, hence weak typing.
func rowToProduct(row map[string]interface{}) (*gqlmodels.Product, error) {
	var prod gqlmodels.Product
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &prod,
		TagName:          "mapstructure",
		ZeroFields:       true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(row); err != nil {
		return nil, err
	}
	prod.UID = uidEncode(uint(prod.ID))
	label := inventory.StatusLabel(stockfilter.NormalizeStockStatus(row["stock_status"]))
	prod.StockStatus = &label
	return &prod, nil
}
