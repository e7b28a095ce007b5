package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockfilter.GO/core/registry"
	"stockfilter.GO/cron"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRegistry_Register_Apply(t *testing.T) {
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCmd)
	Register(&cobra.Command{
		Use: "test:registry",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprint(c.OutOrStdout(), "ok")
		},
	})
	Apply()
	assert.Equal(t, "ok", run(t, "test:registry"))

	assert.Panics(t, func() { Register(&cobra.Command{Use: "late"}) })
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCmd)
	defer registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
	assert.Panics(t, func() { Register(&cobra.Command{Use: "stock:reindex"}) })
}

func TestStockFilterSQL(t *testing.T) {
	got := run(t, "stock:filter:sql", "--value", "OUT_OF_STOCK")
	assert.Contains(t, got, "INNER JOIN cataloginventory_stock_status AS stock_status_filter")
	assert.Contains(t, got, "stock_status_filter.website_id = ? AND stock_status_filter.stock_id = ?")
	assert.Contains(t, got, "WHERE stock_status_filter.stock_status = ?")
	assert.Contains(t, got, "args: [0 1 0]")

	got = run(t, "stock:filter:sql", "--value", " in_stock ")
	assert.Contains(t, got, "args: [0 1 1]")
}

func TestCronList(t *testing.T) {
	cron.Register("cmdlistjob", "@every 5m", func(...string) {})
	defer cron.Unregister("cmdlistjob")
	assert.Contains(t, run(t, "cron:list"), "cmdlistjob")
}
