package store

import (
	"testing"

	"commerce-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCustomerGuardedByOrders(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	p := seedProduct(t, db, t1, "Widget")
	cu := seedCustomer(t, db, t1, "Jane", "jane@example.com")

	order := model.Order{
		Quantity:   1,
		Status:     model.OrderPending,
		ProductID:  p.ID,
		CustomerID: cu.ID,
		TenantID:   t1,
	}
	require.NoError(t, db.Create(&order).Error)

	err := s.DeleteCustomer(ctx(), t1, cu.ID)
	assert.ErrorIs(t, err, ErrReferentialConflict)

	// The customer row survived.
	kept, err := s.GetCustomer(ctx(), t1, cu.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", kept.Name)

	// Once the order is gone, deletion goes through.
	require.NoError(t, s.DeleteOrder(ctx(), t1, order.ID))
	require.NoError(t, s.DeleteCustomer(ctx(), t1, cu.ID))

	_, err = s.GetCustomer(ctx(), t1, cu.ID)
	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)
}

func TestCreateCustomerValidation(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")

	_, err := s.CreateCustomer(ctx(), t1, CustomerInput{Name: "", Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = s.CreateCustomer(ctx(), t1, CustomerInput{Name: "Jane", Email: " "})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestCustomerEmailUniquePerTenantOnly(t *testing.T) {
	s, db := newTestStore(t)
	t1 := seedTenant(t, db, "Acme")
	t2 := seedTenant(t, db, "Globex")

	_, err := s.CreateCustomer(ctx(), t1, CustomerInput{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)

	// Same email under another tenant is fine.
	_, err = s.CreateCustomer(ctx(), t2, CustomerInput{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)

	// Duplicate within the tenant hits the schema constraint.
	_, err = s.CreateCustomer(ctx(), t1, CustomerInput{Name: "Janet", Email: "jane@example.com"})
	assert.Error(t, err)
}
