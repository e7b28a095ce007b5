//go:build !cli

package main

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"stockfilter.GO/api"
	_ "stockfilter.GO/api/graphql"
	_ "stockfilter.GO/api/stock"
	"stockfilter.GO/config"
	"stockfilter.GO/core/auth"
	_ "stockfilter.GO/custom"
	"stockfilter.GO/service/search"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	logger, err := config.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	config.InitRedis()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if config.PingRedis(ctx) {
		logger.Info("Redis connection successful.")
	} else {
		logger.Info("Redis not configured or not reachable, using in-memory search cache.")
	}
	cancel()

	db, err := config.NewDB()
	if err != nil {
		logger.Fatal("failed to connect to DB", zap.Error(err))
	}
	sqldb, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get DB instance", zap.Error(err))
	}
	if err := sqldb.Ping(); err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("Database connection successful.")

	stockCfg := config.LoadStockFilterConfig()
	opts := []search.Option{
		search.WithLogger(logger),
		search.WithCache(search.NewResultCacheFromConfig()),
	}
	es, err := search.NewElasticSearch(config.LoadElasticConfig())
	switch {
	case err == nil:
		opts = append(opts, search.WithElastic(es))
	case !errors.Is(err, search.ErrElasticDisabled):
		logger.Warn("elasticsearch unavailable, text search falls back to SQL", zap.Error(err))
	}
	productSearch := search.New(db, stockCfg, opts...)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			logger.Debug("request", zap.String("path", c.Path()), zap.Int64("duration_ms", duration))
			return err
		}
	})

	deps := api.Deps{DB: db, Search: productSearch, Stock: stockCfg, Logger: logger}
	api.ApplyRoutes(e, deps)

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware(config.LoadAuthConfig()))
	api.ApplyModules(apiGroup, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = config.AppConfig.Port
	}
	logger.Info("Server running", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
