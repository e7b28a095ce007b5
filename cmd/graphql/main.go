// Standalone GraphQL server: go run ./cmd/graphql
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"stockfilter.GO/api"
	_ "stockfilter.GO/api/graphql"
	"stockfilter.GO/config"
	_ "stockfilter.GO/custom"
	"stockfilter.GO/service/search"
)

func main() {
	_ = godotenv.Load()

	logger, err := config.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := config.NewDB()
	if err != nil {
		logger.Fatal("db", zap.Error(err))
	}

	stockCfg := config.LoadStockFilterConfig()
	productSearch := search.New(db, stockCfg, search.WithLogger(logger))

	e := echo.New()
	e.HideBanner = true
	api.ApplyRoutes(e, api.Deps{DB: db, Search: productSearch, Stock: stockCfg, Logger: logger})

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles", "bigchief"}
	fig := figure.NewFigure("StockFilter GQL", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("GraphQL ready",
		zap.String("graphql", "http://localhost:"+port+"/graphql"),
		zap.String("playground", "http://localhost:"+port+"/playground"))
	if err := e.Start(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
