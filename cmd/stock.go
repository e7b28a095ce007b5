package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stockfilter.GO/config"
	"stockfilter.GO/model/api/searchcriteria"
	"stockfilter.GO/model/collection"
	inventoryService "stockfilter.GO/service/inventory"
	"stockfilter.GO/service/stockfilter"
)

var (
	reindexBatch int
	filterValue  string
)

var stockReindexCmd = &cobra.Command{
	Use:   "stock:reindex",
	Short: "Rebuild cataloginventory_stock_status from stock items",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		cfg := config.LoadStockFilterConfig()
		batch := cfg.ReindexBatch
		if reindexBatch > 0 {
			batch = reindexBatch
		}
		res, err := inventoryService.Reindex(cmd.Context(), db, inventoryService.ReindexOptions{
			WebsiteID: cfg.WebsiteID,
			StockID:   cfg.StockID,
			BatchSize: batch,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d products (%d in stock, %d out of stock) in %s\n",
			res.Indexed, res.InStock, res.OutOfStock, res.TotalTime)
		return nil
	},
}

var stockFilterSQLCmd = &cobra.Command{
	Use:   "stock:filter:sql",
	Short: "Print the product collection SQL for a stock_status filter value",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadStockFilterConfig()
		db, err := config.NewDryRunDB()
		if err != nil {
			return err
		}
		f := stockfilter.NewStockStatusFilter(nil, stockfilter.WithStock(cfg.WebsiteID, cfg.StockID))
		c := collection.NewProductCollection(db)
		filter := &searchcriteria.Filter{Field: stockfilter.FieldStockStatus, Value: filterValue, ConditionType: searchcriteria.ConditionEq}
		if !f.Apply(filter, c) {
			return fmt.Errorf("stock status filter not applied")
		}
		sql, bind, err := c.ToSQL()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sql)
		fmt.Fprintf(cmd.OutOrStdout(), "args: %v\n", bind)
		return nil
	},
}

func init() {
	stockReindexCmd.Flags().IntVar(&reindexBatch, "batch", 0, "Batch size (default STOCK_REINDEX_BATCH)")
	stockFilterSQLCmd.Flags().StringVar(&filterValue, "value", "IN_STOCK", "stock_status filter value")
	rootCmd.AddCommand(stockReindexCmd)
	rootCmd.AddCommand(stockFilterSQLCmd)
}
