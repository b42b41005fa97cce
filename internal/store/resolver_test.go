package store

import (
	"testing"

	"commerce-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCategoryIdempotent(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")

	first, err := s.ResolveCategory(ctx(), t1, "Electronics")
	require.NoError(t, err)

	second, err := s.ResolveCategory(ctx(), t1, "Electronics")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var n int64
	require.NoError(t, db.Model(&model.Category{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestResolveCategoryTrimsAndIgnoresCase(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")

	first, err := s.ResolveCategory(ctx(), t1, "Electronics")
	require.NoError(t, err)

	second, err := s.ResolveCategory(ctx(), t1, "  eLeCtRoNiCs ")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var n int64
	require.NoError(t, db.Model(&model.Category{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestResolveRejectsEmptyName(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")

	_, err := s.ResolveCategory(ctx(), t1, "   ")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestResolveNeverCrossesTenants(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	t2 := seedTenant(t, db, "Globex")

	id1, err := s.ResolveCategory(ctx(), t1, "Default Category")
	require.NoError(t, err)
	id2, err := s.ResolveCategory(ctx(), t2, "Default Category")
	require.NoError(t, err)

	// Same name, independent rows per tenant.
	assert.NotEqual(t, id1, id2)

	again, err := s.ResolveCategory(ctx(), t1, "Default Category")
	require.NoError(t, err)
	assert.Equal(t, id1, again)

	var c model.Category
	require.NoError(t, db.First(&c, id2).Error)
	assert.Equal(t, t2, c.TenantID)
}

func TestResolveSupplierKeepsExistingRowUntouched(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")

	id, err := s.ResolveSupplier(ctx(), t1, "Initech", &model.Supplier{
		ContactPerson: "Bill",
		Email:         "bill@initech.example",
	})
	require.NoError(t, err)

	// Resolving again with other contact details must not rewrite the row.
	again, err := s.ResolveSupplier(ctx(), t1, "initech", &model.Supplier{
		ContactPerson: "Peter",
		Email:         "peter@initech.example",
	})
	require.NoError(t, err)
	assert.Equal(t, id, again)

	var sup model.Supplier
	require.NoError(t, db.First(&sup, id).Error)
	assert.Equal(t, "Bill", sup.ContactPerson)
	assert.Equal(t, "bill@initech.example", sup.Email)
}

func TestResolveProductBuildsDefaultChain(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")

	id, err := resolveProduct(s.db, t1, "Surprise Box", 5)
	require.NoError(t, err)

	var p model.Product
	require.NoError(t, db.First(&p, id).Error)
	assert.Equal(t, t1, p.TenantID)
	require.NotZero(t, p.CategoryID)
	require.NotZero(t, p.BrandID)
	require.NotZero(t, p.SupplierID)

	var c model.Category
	require.NoError(t, db.First(&c, p.CategoryID).Error)
	assert.Equal(t, DefaultCategoryName, c.Name)
	assert.Equal(t, t1, c.TenantID)

	var b model.Brand
	require.NoError(t, db.First(&b, p.BrandID).Error)
	assert.Equal(t, DefaultBrandName, b.Name)

	// Resolving another product reuses the same default rows.
	id2, err := resolveProduct(s.db, t1, "Another Box", 5)
	require.NoError(t, err)
	var p2 model.Product
	require.NoError(t, db.First(&p2, id2).Error)
	assert.Equal(t, p.CategoryID, p2.CategoryID)
	assert.Equal(t, p.SupplierID, p2.SupplierID)
}

func TestResolveCustomerSynthesizesEmail(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")

	id, err := resolveCustomer(s.db, t1, "Jane Doe")
	require.NoError(t, err)

	var cu model.Customer
	require.NoError(t, db.First(&cu, id).Error)
	assert.Equal(t, "jane.doe@placeholder.local", cu.Email)
	assert.Equal(t, t1, cu.TenantID)

	again, err := resolveCustomer(s.db, t1, " jane doe ")
	require.NoError(t, err)
	assert.Equal(t, id, again)
}
