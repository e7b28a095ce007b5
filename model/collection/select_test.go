package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockfilter.GO/core/testdb"
	productEntity "stockfilter.GO/model/entity/product"
)

func TestCollection_ToSQL_JoinsWhereOrder(t *testing.T) {
	c := NewProductCollection(testdb.Open(t))
	s := c.Select()
	require.NoError(t, s.Join("cataloginventory_stock_status", "ss", "e.entity_id = ss.product_id AND ss.stock_id = ?", 1))
	require.NoError(t, s.JoinLeft("catalog_product_entity_varchar", "v", "v.entity_id = e.entity_id"))
	require.NoError(t, s.AddColumns("v", "value"))
	s.Where("ss.stock_status = ?", 1).Where("e.sku LIKE ?", "A%")
	s.Order("e", "sku", "DESC").LimitPage(3, 10)

	sql, vars, err := c.ToSQL()
	require.NoError(t, err)
	assert.Contains(t, sql, "e.*")
	assert.Contains(t, sql, "v.value")
	assert.Contains(t, sql, "FROM catalog_product_entity AS e"+
		" INNER JOIN cataloginventory_stock_status AS ss ON e.entity_id = ss.product_id AND ss.stock_id = ?"+
		" LEFT JOIN catalog_product_entity_varchar AS v ON v.entity_id = e.entity_id")
	assert.Contains(t, sql, "ss.stock_status = ?")
	assert.Contains(t, sql, "e.sku LIKE ?")
	assert.Contains(t, sql, "ORDER BY `e`.`sku` DESC")
	assert.Contains(t, sql, "LIMIT")
	require.GreaterOrEqual(t, len(vars), 3)
	assert.Equal(t, []interface{}{1, 1, "A%"}, vars[:3])
}

func TestCollection_ToSQL_NoConnection(t *testing.T) {
	_, _, err := NewProductCollection(nil).ToSQL()
	assert.ErrorIs(t, err, ErrNoConnection)
}

func TestSelect_JoinArgsAreBound(t *testing.T) {
	db := testdb.Open(t)
	testdb.SeedProduct(t, db, "A-1", nil, "Alpha")
	testdb.SeedProduct(t, db, "A-2", nil, "Beta")
	hostile := "x\\' OR 1=1 -- "

	c := NewProductCollection(db)
	require.NoError(t, c.Select().Join("catalog_product_entity_varchar", "v", "v.entity_id = e.entity_id AND v.value = ?", hostile))

	sql, vars, err := c.ToSQL()
	require.NoError(t, err)
	assert.NotContains(t, sql, "1=1")
	assert.Equal(t, []interface{}{hostile}, vars)

	var rows []productEntity.Product
	require.NoError(t, c.Load(context.Background(), &rows))
	assert.Empty(t, rows)
}

func TestSelect_Join_DuplicateAlias(t *testing.T) {
	s := NewSelect("catalog_product_entity", "e")
	require.NoError(t, s.Join("t", "x", "1 = 1"))
	err := s.Join("t", "x", "1 = 1")
	assert.True(t, errors.Is(err, ErrDuplicateAlias))
	assert.Len(t, s.FromPart(), 2)
	assert.True(t, s.HasAlias("x"))
	assert.False(t, s.HasAlias("y"))
	assert.Error(t, s.AddColumns("y", "value"))
}

func TestSelect_Distinct(t *testing.T) {
	db := testdb.Open(t)
	p := testdb.SeedProduct(t, db, "A-1", nil, "")
	for _, cat := range []uint{3, 4} {
		require.NoError(t, db.Create(&productEntity.CategoryProduct{CategoryID: cat, ProductID: p.EntityID}).Error)
	}

	c := NewProductCollection(db)
	require.NoError(t, c.Select().Join("catalog_category_product", "cat", "e.entity_id = cat.product_id"))
	c.Select().Where("cat.category_id IN (?, ?)", 3, 4).Distinct(true)

	var rows []productEntity.Product
	require.NoError(t, c.Load(context.Background(), &rows))
	assert.Len(t, rows, 1)

	n, err := c.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestConditionSQL(t *testing.T) {
	cases := []struct {
		cond  string
		value interface{}
		want  string
		args  []interface{}
	}{
		{"", "A", "e.sku = ?", []interface{}{"A"}},
		{"eq", "A", "e.sku = ?", []interface{}{"A"}},
		{"neq", "A", "e.sku <> ?", []interface{}{"A"}},
		{"like", "A%", "e.sku LIKE ?", []interface{}{"A%"}},
		{"gteq", 3, "e.sku >= ?", []interface{}{3}},
		{"lt", 3, "e.sku < ?", []interface{}{3}},
		{"null", nil, "e.sku IS NULL", nil},
		{"notnull", nil, "e.sku IS NOT NULL", nil},
		{"in", []string{"A", "B"}, "e.sku IN (?, ?)", []interface{}{"A", "B"}},
		{"in", "A, B,", "e.sku IN (?, ?)", []interface{}{"A", "B"}},
		{"nin", []int{1}, "e.sku NOT IN (?)", []interface{}{1}},
		{"in", []string{}, "1 = 0", nil},
		{"nin", nil, "1 = 1", nil},
		{"IN", 7, "e.sku IN (?)", []interface{}{7}},
	}
	for _, tc := range cases {
		got, args, err := ConditionSQL("e.sku", tc.cond, tc.value)
		require.NoError(t, err, tc.cond)
		assert.Equal(t, tc.want, got, tc.cond)
		assert.Equal(t, tc.args, args, tc.cond)
	}

	_, _, err := ConditionSQL("e.sku", "regexp", "x")
	assert.True(t, errors.Is(err, ErrUnsupportedCondition))
}
