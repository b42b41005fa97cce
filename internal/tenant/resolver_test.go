package tenant

import (
	"context"
	"testing"

	"commerce-service/internal/model"
	"commerce-service/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestResolver(t *testing.T) (*Resolver, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	return NewResolver(db, nil), db
}

func TestResolveTenantProvisionsLazily(t *testing.T) {
	r, db := newTestResolver(t)

	id, err := r.ResolveTenantID(context.Background(), Identity{Email: "jane@example.com", Name: "Jane"})
	require.NoError(t, err)
	require.NotZero(t, id)

	var tn model.Tenant
	require.NoError(t, db.First(&tn, id).Error)
	assert.Equal(t, "Jane's Company", tn.Name)

	var user model.User
	require.NoError(t, db.Where("email = ?", "jane@example.com").First(&user).Error)
	require.NotNil(t, user.TenantID)
	assert.Equal(t, id, *user.TenantID)
}

func TestResolveTenantIdempotent(t *testing.T) {
	r, db := newTestResolver(t)

	first, err := r.ResolveTenantID(context.Background(), Identity{Email: "jane@example.com"})
	require.NoError(t, err)

	second, err := r.ResolveTenantID(context.Background(), Identity{Email: "Jane@Example.com "})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var tenants, users int64
	require.NoError(t, db.Model(&model.Tenant{}).Count(&tenants).Error)
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	assert.EqualValues(t, 1, tenants)
	assert.EqualValues(t, 1, users)
}

func TestResolveTenantExistingUserWithoutTenant(t *testing.T) {
	r, db := newTestResolver(t)

	user := model.User{Email: "bob@example.com"}
	require.NoError(t, db.Create(&user).Error)

	id, err := r.ResolveTenantID(context.Background(), Identity{Email: "bob@example.com"})
	require.NoError(t, err)

	var tn model.Tenant
	require.NoError(t, db.First(&tn, id).Error)
	// No display name on the identity: the email local part fills in.
	assert.Equal(t, "bob's Company", tn.Name)
}

func TestResolveTenantKeepsExistingAssociation(t *testing.T) {
	r, db := newTestResolver(t)

	tn := model.Tenant{Name: "Acme"}
	require.NoError(t, db.Create(&tn).Error)
	user := model.User{Email: "bob@example.com", TenantID: &tn.ID}
	require.NoError(t, db.Create(&user).Error)

	id, err := r.ResolveTenantID(context.Background(), Identity{Email: "bob@example.com", Name: "Robert"})
	require.NoError(t, err)
	assert.Equal(t, tn.ID, id)

	var tenants int64
	require.NoError(t, db.Model(&model.Tenant{}).Count(&tenants).Error)
	assert.EqualValues(t, 1, tenants)
}

func TestResolveTenantUnauthenticated(t *testing.T) {
	r, _ := newTestResolver(t)

	_, err := r.ResolveTenantID(context.Background(), Identity{Email: "   "})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
