package store

import (
	"testing"

	"commerce-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantIsolationOnReads(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	t2 := seedTenant(t, db, "Globex")

	mine := seedProduct(t, db, t1, "Widget")
	other := seedProduct(t, db, t2, "Gadget")

	products, err := s.ListProducts(ctx(), t1, ListParams{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, mine.ID, products[0].ID)

	// A valid id under another tenant behaves exactly like a missing one.
	_, err = s.GetProduct(ctx(), t1, other.ID)
	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)

	got, err := s.GetProduct(ctx(), t2, other.ID)
	require.NoError(t, err)
	assert.Equal(t, t2, got.TenantID)
}

func TestOwnershipEnforcementOnUpdate(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	t2 := seedTenant(t, db, "Globex")

	other := seedProduct(t, db, t2, "Gadget")

	_, err := s.UpdateProduct(ctx(), t1, other.ID, ProductInput{Name: "Hijacked", Price: 1})
	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)

	// No mutation happened.
	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, other.ID).Error)
	assert.Equal(t, "Gadget", reloaded.Name)
	assert.Equal(t, t2, reloaded.TenantID)
}

func TestOwnershipEnforcementOnDelete(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	t2 := seedTenant(t, db, "Globex")

	other := seedProduct(t, db, t2, "Gadget")

	err := s.DeleteProduct(ctx(), t1, other.ID)
	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)

	var n int64
	require.NoError(t, db.Model(&model.Product{}).Where("id = ?", other.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestUpdateNeverMovesRecordBetweenTenants(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")

	p := seedProduct(t, db, t1, "Widget")

	updated, err := s.UpdateProduct(ctx(), t1, p.ID, ProductInput{Name: "Widget v2", Price: 19.99})
	require.NoError(t, err)
	assert.Equal(t, t1, updated.TenantID)
}

func TestCountScopedToTenant(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	t2 := seedTenant(t, db, "Globex")

	seedProduct(t, db, t1, "A")
	seedProduct(t, db, t1, "B")
	seedProduct(t, db, t2, "C")

	n, err := s.CountProducts(ctx(), t1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
