package collection

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

const (
	ProductTable   = "catalog_product_entity"
	ProductAlias   = "e"
	ProductIDField = "entity_id"
)

var ErrNoConnection = errors.New("collection: no database connection")

// Collection is a Select bound to a database connection.
type Collection struct {
	db      *gorm.DB
	sel     *Select
	idField string
}

// NewCollection creates a collection over table. db may be nil when the collection
// is only rendered, never loaded.
func NewCollection(db *gorm.DB, table, alias, idField string) *Collection {
	return &Collection{db: db, sel: NewSelect(table, alias), idField: idField}
}

// NewProductCollection creates a collection over catalog_product_entity aliased e.
func NewProductCollection(db *gorm.DB) *Collection {
	return NewCollection(db, ProductTable, ProductAlias, ProductIDField)
}

// Select returns the mutable select of the collection.
func (c *Collection) Select() *Select {
	return c.sel
}

// Connection returns the database connection (nil for render-only collections).
func (c *Collection) Connection() *gorm.DB {
	return c.db
}

// AddFieldToFilter adds a single condition on a main table column.
func (c *Collection) AddFieldToFilter(field, condition string, value interface{}) error {
	expr, args, err := ConditionSQL(c.sel.MainAlias()+"."+field, condition, value)
	if err != nil {
		return err
	}
	c.sel.Where(expr, args...)
	return nil
}

// SetPage applies a 1-based page and a page size.
func (c *Collection) SetPage(page, size int) *Collection {
	c.sel.LimitPage(page, size)
	return c
}

// Load runs the select and scans rows into dest.
func (c *Collection) Load(ctx context.Context, dest interface{}) error {
	if c.db == nil {
		return ErrNoConnection
	}
	if err := c.sel.Apply(c.db.WithContext(ctx)).Find(dest).Error; err != nil {
		return fmt.Errorf("collection load: %w", err)
	}
	return nil
}

// Count returns the number of distinct main rows matching the filters.
func (c *Collection) Count(ctx context.Context) (int64, error) {
	if c.db == nil {
		return 0, ErrNoConnection
	}
	var n int64
	if err := c.sel.ApplyCount(c.db.WithContext(ctx), c.idField).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("collection count: %w", err)
	}
	return n, nil
}

// ToSQL renders the load query without running it. The SQL keeps its placeholders;
// vars are returned in bind order.
func (c *Collection) ToSQL() (string, []interface{}, error) {
	if c.db == nil {
		return "", nil, ErrNoConnection
	}
	var rows []map[string]interface{}
	tx := c.sel.Apply(c.db.Session(&gorm.Session{DryRun: true})).Find(&rows)
	if tx.Error != nil {
		return "", nil, tx.Error
	}
	return tx.Statement.SQL.String(), tx.Statement.Vars, nil
}
