package store

import (
	"testing"

	"commerce-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderWithExistingReferences(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	p := seedProduct(t, db, t1, "Widget")
	cu := seedCustomer(t, db, t1, "Jane", "jane@example.com")

	order, err := s.CreateOrder(ctx(), t1, OrderInput{
		Product:  "widget",
		Customer: "JANE",
		Quantity: 2,
		Address:  "1 Main St",
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID, order.ProductID)
	assert.Equal(t, cu.ID, order.CustomerID)
	assert.Equal(t, model.OrderPending, order.Status)
	assert.Equal(t, t1, order.TenantID)
}

func TestCreateOrderCreatesPlaceholders(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")

	order, err := s.CreateOrder(ctx(), t1, OrderInput{
		Product:      "Mystery Item",
		ProductPrice: 12.5,
		Customer:     "Walk In",
		Quantity:     1,
	})
	require.NoError(t, err)

	var p model.Product
	require.NoError(t, db.First(&p, order.ProductID).Error)
	assert.Equal(t, "Mystery Item", p.Name)
	assert.Equal(t, t1, p.TenantID)
	assert.NotZero(t, p.CategoryID)
	assert.NotZero(t, p.BrandID)
	assert.NotZero(t, p.SupplierID)

	var cu model.Customer
	require.NoError(t, db.First(&cu, order.CustomerID).Error)
	assert.Equal(t, "walk.in@placeholder.local", cu.Email)

	// A second order for the same names reuses the placeholder rows.
	second, err := s.CreateOrder(ctx(), t1, OrderInput{
		Product:  "mystery item",
		Customer: "walk in",
		Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, order.ProductID, second.ProductID)
	assert.Equal(t, order.CustomerID, second.CustomerID)

	var products, customers int64
	require.NoError(t, db.Model(&model.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&model.Customer{}).Count(&customers).Error)
	assert.EqualValues(t, 1, products)
	assert.EqualValues(t, 1, customers)
}

func TestCreateOrderValidation(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")

	_, err := s.CreateOrder(ctx(), t1, OrderInput{Product: "X", Customer: "Y", Quantity: 0})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = s.CreateOrder(ctx(), t1, OrderInput{Product: "", Customer: "Y", Quantity: 1})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = s.CreateOrder(ctx(), t1, OrderInput{
		Product: "X", Customer: "Y", Quantity: 1, Status: model.OrderStatus("BOGUS"),
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestOrderPlaceholdersScopedToTenant(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	t2 := seedTenant(t, db, "Globex")

	// Tenant 2 already sells a product with the same name.
	foreign := seedProduct(t, db, t2, "Mystery Item")

	order, err := s.CreateOrder(ctx(), t1, OrderInput{
		Product:  "Mystery Item",
		Customer: "Walk In",
		Quantity: 1,
	})
	require.NoError(t, err)
	assert.NotEqual(t, foreign.ID, order.ProductID)

	var p model.Product
	require.NoError(t, db.First(&p, order.ProductID).Error)
	assert.Equal(t, t1, p.TenantID)
}

func TestUpdateOrderStatus(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	p := seedProduct(t, db, t1, "Widget")
	cu := seedCustomer(t, db, t1, "Jane", "jane@example.com")

	order := model.Order{
		Quantity: 1, Status: model.OrderPending,
		ProductID: p.ID, CustomerID: cu.ID, TenantID: t1,
	}
	require.NoError(t, db.Create(&order).Error)

	updated, err := s.UpdateOrder(ctx(), t1, order.ID, OrderInput{
		Quantity: 1,
		Status:   model.OrderShipped,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderShipped, updated.Status)
	assert.Equal(t, p.ID, updated.ProductID)
}
