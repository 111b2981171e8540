package seed

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/circuitshelf/componentstore-api/models"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func TestEnsureProductsSeedsOnce(t *testing.T) {
	db := newDB(t)

	require.NoError(t, EnsureProducts(db))
	var first int64
	require.NoError(t, db.Model(&models.Product{}).Count(&first).Error)
	require.EqualValues(t, len(catalog), first)

	// a second run must not duplicate rows
	require.NoError(t, EnsureProducts(db))
	var second int64
	require.NoError(t, db.Model(&models.Product{}).Count(&second).Error)
	require.Equal(t, first, second)
}

func TestEnsureProductsSkipsNonEmptyTable(t *testing.T) {
	db := newDB(t)
	require.NoError(t, db.Create(&models.Product{Name: "Custom", Category: "Misc", Price: 1}).Error)

	require.NoError(t, EnsureProducts(db))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
