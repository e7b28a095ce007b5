package custom

import (
	"context"
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"

	"stockfilter.GO/api"
	"stockfilter.GO/core/registry"
	gqlregistry "stockfilter.GO/graphql/registry"
	"stockfilter.GO/model/entity/inventory"
	"stockfilter.GO/service/stockfilter"
)

// ModuleName is the module identity of the stock status filter.
const ModuleName = "Mage2AU_GraphQLStockFilter"

func init() {
	_, file, _, _ := runtime.Caller(0)
	registry.RegisterModule(ModuleName, filepath.Dir(file))

	// GraphQL extension: _extension(name: "stockStatusNormalize", args: "{\"value\":\"IN_STOCK\"}")
	gqlregistry.Register("stockStatusNormalize", normalizeStockStatus)

	// HTTP route
	api.RegisterGET("/stockfilter/module", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"modules":    registry.Modules(),
			"field":      stockfilter.FieldStockStatus,
			"join_alias": stockfilter.JoinAlias,
		})
	})
}

type normalizeArgs struct {
	Value interface{} `mapstructure:"value"`
}

func normalizeStockStatus(_ context.Context, args map[string]interface{}) (interface{}, error) {
	var in normalizeArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return nil, err
	}
	n := stockfilter.NormalizeStockStatus(in.Value)
	return map[string]interface{}{"value": n, "label": inventory.StatusLabel(n)}, nil
}
