package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingStatusTransitions(t *testing.T) {
	tests := []struct {
		from    ShippingStatus
		to      ShippingStatus
		allowed bool
	}{
		{ShippingPending, ShippingProcessing, true},
		{ShippingProcessing, ShippingShipped, true},
		{ShippingShipped, ShippingDelivered, true},
		{ShippingPending, ShippingShipped, false},
		{ShippingPending, ShippingDelivered, false},
		{ShippingProcessing, ShippingDelivered, false},
		{ShippingPending, ShippingCancelled, true},
		{ShippingProcessing, ShippingCancelled, true},
		{ShippingShipped, ShippingCancelled, true},
		{ShippingDelivered, ShippingCancelled, false},
		{ShippingCancelled, ShippingPending, false},
		{ShippingDelivered, ShippingShipped, false},
		{ShippingShipped, ShippingProcessing, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestShippingStatusTerminal(t *testing.T) {
	assert.True(t, ShippingDelivered.Terminal())
	assert.True(t, ShippingCancelled.Terminal())
	assert.False(t, ShippingPending.Terminal())
	assert.False(t, ShippingShipped.Terminal())
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderPending.Valid())
	assert.True(t, OrderCancelled.Valid())
	assert.False(t, OrderStatus("BOGUS").Valid())
	assert.False(t, OrderStatus("").Valid())
}
