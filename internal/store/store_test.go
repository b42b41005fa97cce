package store

import (
	"context"
	"testing"

	"commerce-service/internal/model"
	"commerce-service/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	return New(db, nil, nil), db
}

func seedTenant(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	tn := model.Tenant{Name: name}
	require.NoError(t, db.Create(&tn).Error)
	return tn.ID
}

func seedProduct(t *testing.T, db *gorm.DB, tenantID uint, name string) *model.Product {
	t.Helper()
	p := model.Product{Name: name, Price: 9.99, TenantID: tenantID}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func seedStock(t *testing.T, db *gorm.DB, tenantID, productID uint, quantity int) *model.Stock {
	t.Helper()
	st := model.Stock{Quantity: quantity, ProductID: productID, TenantID: tenantID}
	require.NoError(t, db.Create(&st).Error)
	return &st
}

func seedCustomer(t *testing.T, db *gorm.DB, tenantID uint, name, email string) *model.Customer {
	t.Helper()
	cu := model.Customer{Name: name, Email: email, TenantID: tenantID}
	require.NoError(t, db.Create(&cu).Error)
	return &cu
}

func ctx() context.Context {
	return context.Background()
}
