package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"stockfilter.GO/config"
	"stockfilter.GO/cron"
	inventoryService "stockfilter.GO/service/inventory"
	"stockfilter.GO/service/search"
)

// StockStatusReindexJob is the cron job name of the stock status reindex.
const StockStatusReindexJob = "stockstatusreindex"

func init() {
	// init runs before main loads .env
	config.LoadEnv()
	cfg := config.LoadStockFilterConfig()
	cron.Register(StockStatusReindexJob, cfg.ReindexSchedule, func(...string) {
		RunStockStatusReindex(cfg)
	})
}

// RunStockStatusReindex rebuilds the stock status index and drops cached searches.
func RunStockStatusReindex(cfg config.StockFilter) {
	logger, err := config.NewLogger()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	db, err := config.NewDB()
	if err != nil {
		logger.Error("stock status reindex: database connection failed", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	res, err := inventoryService.Reindex(ctx, db, inventoryService.ReindexOptions{
		WebsiteID: cfg.WebsiteID,
		StockID:   cfg.StockID,
		BatchSize: cfg.ReindexBatch,
	})
	if err != nil {
		logger.Error("stock status reindex failed", zap.Error(err))
		return
	}
	logger.Info("stock status reindexed",
		zap.Int("indexed", res.Indexed),
		zap.Int("in_stock", res.InStock),
		zap.Int("out_of_stock", res.OutOfStock),
		zap.Duration("took", res.TotalTime))

	config.InitRedis()
	config.PingRedis(ctx)
	if err := search.NewResultCacheFromConfig().Flush(ctx); err != nil {
		logger.Warn("search cache flush failed", zap.Error(err))
	}
}
