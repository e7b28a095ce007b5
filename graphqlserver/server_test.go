package graphqlserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockfilter.GO/config"
	"stockfilter.GO/core/testdb"
	"stockfilter.GO/graphql"
	"stockfilter.GO/service/search"
)

const productsQuery = `query($status: String) {
  products(filter: {stock_status: {eq: $status}}, sort: {sku: ASC}) {
    total_count
    items { id uid sku name stock_status }
    page_info { current_page page_size total_pages }
  }
}`

type productsResponse struct {
	Products struct {
		TotalCount int `json:"total_count"`
		Items      []struct {
			ID          int    `json:"id"`
			UID         string `json:"uid"`
			SKU         string `json:"sku"`
			Name        string `json:"name"`
			StockStatus string `json:"stock_status"`
		} `json:"items"`
		PageInfo struct {
			CurrentPage int `json:"current_page"`
			PageSize    int `json:"page_size"`
			TotalPages  int `json:"total_pages"`
		} `json:"page_info"`
	} `json:"products"`
}

func TestSchema_ProductsStockStatusFilter(t *testing.T) {
	db := testdb.Open(t)
	testdb.SeedProduct(t, db, "IN-1", testdb.Status(1), "In One")
	testdb.SeedProduct(t, db, "OUT-1", testdb.Status(0), "Out One")
	testdb.SeedProduct(t, db, "IN-2", testdb.Status(1), "In Two")

	schema, err := NewSchema(search.New(db, config.StockFilter{}), nil)
	require.NoError(t, err)

	ctx := graphql.WithStoreID(context.Background(), 0)
	resp := schema.Exec(ctx, productsQuery, "", map[string]interface{}{"status": "IN_STOCK"})
	require.Empty(t, resp.Errors)

	var out productsResponse
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	assert.Equal(t, 2, out.Products.TotalCount)
	require.Len(t, out.Products.Items, 2)
	assert.Equal(t, "IN-1", out.Products.Items[0].SKU)
	assert.Equal(t, "In One", out.Products.Items[0].Name)
	assert.Equal(t, "IN_STOCK", out.Products.Items[0].StockStatus)
	assert.Equal(t, "IN-2", out.Products.Items[1].SKU)
	assert.Equal(t, 1, out.Products.PageInfo.CurrentPage)
	assert.Equal(t, 20, out.Products.PageInfo.PageSize)
	assert.Equal(t, 1, out.Products.PageInfo.TotalPages)

	resp = schema.Exec(ctx, productsQuery, "", map[string]interface{}{"status": "OUT_OF_STOCK"})
	require.Empty(t, resp.Errors)
	out = productsResponse{}
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	require.Len(t, out.Products.Items, 1)
	assert.Equal(t, "OUT-1", out.Products.Items[0].SKU)
	assert.Equal(t, "OUT_OF_STOCK", out.Products.Items[0].StockStatus)
}

func TestSchema_ProductsNoFilter(t *testing.T) {
	db := testdb.Open(t)
	testdb.SeedProduct(t, db, "A", testdb.Status(1), "")
	testdb.SeedProduct(t, db, "B", nil, "")

	schema, err := NewSchema(search.New(db, config.StockFilter{}), nil)
	require.NoError(t, err)

	resp := schema.Exec(context.Background(), `{ products(pageSize: 1, currentPage: 2) { total_count items { sku stock_status } page_info { total_pages } } }`, "", nil)
	require.Empty(t, resp.Errors)
	var out productsResponse
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	assert.Equal(t, 2, out.Products.TotalCount)
	require.Len(t, out.Products.Items, 1)
	assert.Equal(t, "B", out.Products.Items[0].SKU)
	assert.Equal(t, "OUT_OF_STOCK", out.Products.Items[0].StockStatus)
	assert.Equal(t, 2, out.Products.PageInfo.TotalPages)
}
