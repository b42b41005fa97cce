package store

import (
	"testing"

	"commerce-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShippingDecrementsStock(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	p := seedProduct(t, db, t1, "Widget")
	st := seedStock(t, db, t1, p.ID, 3)

	shipping, err := s.CreateShipping(ctx(), t1, ShippingInput{
		Name:      "Order #1",
		Carrier:   "DHL",
		StockID:   st.ID,
		ProductID: p.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ShippingPending, shipping.Status)

	var reloaded model.Stock
	require.NoError(t, db.First(&reloaded, st.ID).Error)
	assert.Equal(t, 2, reloaded.Quantity)
}

func TestCreateShippingInsufficientStock(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	p := seedProduct(t, db, t1, "Widget")
	st := seedStock(t, db, t1, p.ID, 0)

	_, err := s.CreateShipping(ctx(), t1, ShippingInput{
		Name:      "Order #1",
		StockID:   st.ID,
		ProductID: p.ID,
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Nothing was written.
	var reloaded model.Stock
	require.NoError(t, db.First(&reloaded, st.ID).Error)
	assert.Equal(t, 0, reloaded.Quantity)

	var n int64
	require.NoError(t, db.Model(&model.Shipping{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestStockNeverGoesNegative(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	p := seedProduct(t, db, t1, "Widget")
	st := seedStock(t, db, t1, p.ID, 2)

	for i := 0; i < 2; i++ {
		_, err := s.CreateShipping(ctx(), t1, ShippingInput{
			Name:      "Shipment",
			StockID:   st.ID,
			ProductID: p.ID,
		})
		require.NoError(t, err)
	}

	_, err := s.CreateShipping(ctx(), t1, ShippingInput{
		Name:      "One too many",
		StockID:   st.ID,
		ProductID: p.ID,
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	var reloaded model.Stock
	require.NoError(t, db.First(&reloaded, st.ID).Error)
	assert.Equal(t, 0, reloaded.Quantity)
}

func TestCreateShippingProductMismatch(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	p1 := seedProduct(t, db, t1, "Widget")
	p2 := seedProduct(t, db, t1, "Gadget")
	st := seedStock(t, db, t1, p1.ID, 5)

	_, err := s.CreateShipping(ctx(), t1, ShippingInput{
		Name:      "Wrong product",
		StockID:   st.ID,
		ProductID: p2.ID,
	})
	assert.ErrorIs(t, err, ErrReferentialConflict)

	var reloaded model.Stock
	require.NoError(t, db.First(&reloaded, st.ID).Error)
	assert.Equal(t, 5, reloaded.Quantity)
}

func TestCreateShippingCrossTenantStock(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	t2 := seedTenant(t, db, "Globex")
	p := seedProduct(t, db, t2, "Widget")
	st := seedStock(t, db, t2, p.ID, 5)

	_, err := s.CreateShipping(ctx(), t1, ShippingInput{
		Name:      "Stolen stock",
		StockID:   st.ID,
		ProductID: p.ID,
	})
	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)
}

func TestReassignShipmentConservesUnits(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	p := seedProduct(t, db, t1, "Widget")
	stockA := seedStock(t, db, t1, p.ID, 4)
	stockB := seedStock(t, db, t1, p.ID, 4)

	shipping, err := s.CreateShipping(ctx(), t1, ShippingInput{
		Name:      "Shipment",
		StockID:   stockA.ID,
		ProductID: p.ID,
	})
	require.NoError(t, err)
	// A now holds 3, B still 4.

	updated, err := s.UpdateShipping(ctx(), t1, shipping.ID, ShippingInput{StockID: stockB.ID})
	require.NoError(t, err)
	assert.Equal(t, stockB.ID, updated.StockID)

	var a, b model.Stock
	require.NoError(t, db.First(&a, stockA.ID).Error)
	require.NoError(t, db.First(&b, stockB.ID).Error)
	assert.Equal(t, 4, a.Quantity)
	assert.Equal(t, 3, b.Quantity)
	assert.Equal(t, 7, a.Quantity+b.Quantity)
}

func TestReassignShipmentRollsBackOnEmptyTarget(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	p := seedProduct(t, db, t1, "Widget")
	stockA := seedStock(t, db, t1, p.ID, 2)
	stockB := seedStock(t, db, t1, p.ID, 0)

	shipping, err := s.CreateShipping(ctx(), t1, ShippingInput{
		Name:      "Shipment",
		StockID:   stockA.ID,
		ProductID: p.ID,
	})
	require.NoError(t, err)

	_, err = s.UpdateShipping(ctx(), t1, shipping.ID, ShippingInput{StockID: stockB.ID})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Both rows kept their pre-reassignment levels and the shipment still
	// points at the original stock.
	var a, b model.Stock
	require.NoError(t, db.First(&a, stockA.ID).Error)
	require.NoError(t, db.First(&b, stockB.ID).Error)
	assert.Equal(t, 1, a.Quantity)
	assert.Equal(t, 0, b.Quantity)

	var reloaded model.Shipping
	require.NoError(t, db.First(&reloaded, shipping.ID).Error)
	assert.Equal(t, stockA.ID, reloaded.StockID)
}

func TestReassignShipmentProductMismatch(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	p1 := seedProduct(t, db, t1, "Widget")
	p2 := seedProduct(t, db, t1, "Gadget")
	stockA := seedStock(t, db, t1, p1.ID, 2)
	stockB := seedStock(t, db, t1, p2.ID, 2)

	shipping, err := s.CreateShipping(ctx(), t1, ShippingInput{
		Name:      "Shipment",
		StockID:   stockA.ID,
		ProductID: p1.ID,
	})
	require.NoError(t, err)

	_, err = s.UpdateShipping(ctx(), t1, shipping.ID, ShippingInput{StockID: stockB.ID})
	assert.ErrorIs(t, err, ErrReferentialConflict)
}

func TestShippingStatusTransitions(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	p := seedProduct(t, db, t1, "Widget")
	st := seedStock(t, db, t1, p.ID, 5)

	shipping, err := s.CreateShipping(ctx(), t1, ShippingInput{
		Name:      "Shipment",
		StockID:   st.ID,
		ProductID: p.ID,
	})
	require.NoError(t, err)

	// Skipping a step is rejected.
	_, err = s.UpdateShipping(ctx(), t1, shipping.ID, ShippingInput{Status: model.ShippingShipped})
	assert.ErrorIs(t, err, ErrValidationFailed)

	for _, next := range []model.ShippingStatus{
		model.ShippingProcessing,
		model.ShippingShipped,
		model.ShippingDelivered,
	} {
		updated, err := s.UpdateShipping(ctx(), t1, shipping.ID, ShippingInput{Status: next})
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	// Terminal state admits nothing further.
	_, err = s.UpdateShipping(ctx(), t1, shipping.ID, ShippingInput{Status: model.ShippingCancelled})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestShippingCancelFromAnyNonTerminalState(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	p := seedProduct(t, db, t1, "Widget")
	st := seedStock(t, db, t1, p.ID, 5)

	shipping, err := s.CreateShipping(ctx(), t1, ShippingInput{
		Name:      "Shipment",
		StockID:   st.ID,
		ProductID: p.ID,
	})
	require.NoError(t, err)

	_, err = s.UpdateShipping(ctx(), t1, shipping.ID, ShippingInput{Status: model.ShippingProcessing})
	require.NoError(t, err)

	updated, err := s.UpdateShipping(ctx(), t1, shipping.ID, ShippingInput{Status: model.ShippingCancelled})
	require.NoError(t, err)
	assert.Equal(t, model.ShippingCancelled, updated.Status)
}
