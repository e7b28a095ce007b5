package stock

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stockfilter.GO/api"
	inventoryRepo "stockfilter.GO/model/repository/inventory"
	inventoryService "stockfilter.GO/service/inventory"
)

func init() {
	api.RegisterModule(RegisterStockRoutes)
}

func RegisterStockRoutes(apiGroup *echo.Group, deps api.Deps) {
	g := apiGroup.Group("/stock")
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := inventoryService.ReindexOptions{
		WebsiteID: deps.Stock.WebsiteID,
		StockID:   deps.Stock.StockID,
		BatchSize: deps.Stock.ReindexBatch,
	}

	// PUT /api/stock/status – bulk stock status upsert (auth required via /api middleware)
	g.PUT("/status", func(c echo.Context) error {
		start := time.Now()

		var body struct {
			Items     []inventoryService.StatusInput `json:"items"`
			BatchSize int                            `json:"batch_size"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(body.Items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "items array is required and must not be empty"})
		}

		runOpts := opts
		if body.BatchSize > 0 {
			runOpts.BatchSize = body.BatchSize
		}
		res, err := inventoryService.UpdateStatuses(c.Request().Context(), deps.DB, body.Items, runOpts)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			logger.Error("stock status update failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}
		invalidate(c, deps, logger)

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"updated":             res.Updated,
			"skipped":             res.Skipped,
			"warnings":            res.Warnings,
			"request_duration_ms": duration,
		})
	})

	// GET /api/stock/status/:id – indexed stock status of one product
	g.GET("/status/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		status, err := inventoryRepo.NewStockStatusRepository(deps.DB.WithContext(c.Request().Context())).
			Get(uint(id), opts.WebsiteID, stockID(opts))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stock status not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"product_id":   status.ProductID,
			"website_id":   status.WebsiteID,
			"stock_id":     status.StockID,
			"qty":          status.Qty,
			"stock_status": status.StockStatus,
			"label":        status.Label(),
		})
	})

	// POST /api/stock/reindex – rebuild the stock status index from stock items
	g.POST("/reindex", func(c echo.Context) error {
		res, err := inventoryService.Reindex(c.Request().Context(), deps.DB, opts)
		if err != nil {
			logger.Error("stock status reindex failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		invalidate(c, deps, logger)
		return c.JSON(http.StatusOK, echo.Map{
			"indexed":       res.Indexed,
			"in_stock":      res.InStock,
			"out_of_stock":  res.OutOfStock,
			"total_time_ms": res.TotalTime.Milliseconds(),
		})
	})
}

func stockID(opts inventoryService.ReindexOptions) uint16 {
	if opts.StockID == 0 {
		return 1
	}
	return opts.StockID
}

func invalidate(c echo.Context, deps api.Deps, logger *zap.Logger) {
	if deps.Search == nil {
		return
	}
	if err := deps.Search.InvalidateCache(c.Request().Context()); err != nil {
		logger.Warn("search cache invalidation failed", zap.Error(err))
	}
}
