// Package testdb opens migrated SQLite databases for tests.
package testdb

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	entity "stockfilter.GO/model/entity"
	inventoryEntity "stockfilter.GO/model/entity/inventory"
	productEntity "stockfilter.GO/model/entity/product"
)

// Open returns a file-backed SQLite database with the catalog and inventory tables.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	file := filepath.Join(t.TempDir(), fmt.Sprintf("stockfilter_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(file), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	if err := db.AutoMigrate(
		&productEntity.Product{},
		&productEntity.Varchar{},
		&productEntity.CategoryProduct{},
		&productEntity.StockItem{},
		&inventoryEntity.StockStatus{},
		&entity.EavAttribute{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// SeedProduct inserts a product with an optional stock status row and name.
func SeedProduct(t testing.TB, db *gorm.DB, sku string, status *uint16, name string) productEntity.Product {
	t.Helper()
	p := productEntity.Product{SKU: sku, TypeID: "simple", AttributeSetID: 4}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product %s: %v", sku, err)
	}
	if status != nil {
		row := inventoryEntity.StockStatus{
			ProductID:   p.EntityID,
			WebsiteID:   inventoryEntity.DefaultWebsiteID,
			StockID:     inventoryEntity.DefaultStockID,
			Qty:         float64(*status) * 10,
			StockStatus: *status,
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed stock status %s: %v", sku, err)
		}
	}
	if name != "" {
		attrID := attributeID(t, db, "name")
		v := productEntity.Varchar{AttributeID: attrID, StoreID: 0, EntityID: p.EntityID, Value: name}
		if err := db.Create(&v).Error; err != nil {
			t.Fatalf("seed name %s: %v", sku, err)
		}
	}
	return p
}

func attributeID(t testing.TB, db *gorm.DB, code string) uint16 {
	t.Helper()
	var attr entity.EavAttribute
	err := db.Where("attribute_code = ? AND entity_type_id = ?", code, entity.ProductEntityTypeID).First(&attr).Error
	if err == nil {
		return attr.AttributeID
	}
	attr = entity.EavAttribute{EntityTypeID: entity.ProductEntityTypeID, AttributeCode: code, BackendType: "varchar"}
	if err := db.Create(&attr).Error; err != nil {
		t.Fatalf("seed attribute %s: %v", code, err)
	}
	return attr.AttributeID
}

// Status returns a pointer to a stock status value.
func Status(v uint16) *uint16 {
	return &v
}
