package model

import (
	"time"

	"gorm.io/gorm"
)

// ShippingStatus enumerates the lifecycle states of a shipment.
type ShippingStatus string

const (
	ShippingPending    ShippingStatus = "PENDING"
	ShippingProcessing ShippingStatus = "PROCESSING"
	ShippingShipped    ShippingStatus = "SHIPPED"
	ShippingDelivered  ShippingStatus = "DELIVERED"
	ShippingCancelled  ShippingStatus = "CANCELLED"
)

// Valid reports whether s is a known shipping status.
func (s ShippingStatus) Valid() bool {
	switch s {
	case ShippingPending, ShippingProcessing, ShippingShipped, ShippingDelivered, ShippingCancelled:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s ShippingStatus) Terminal() bool {
	return s == ShippingDelivered || s == ShippingCancelled
}

// CanTransitionTo reports whether the status may move to next. Forward moves
// follow PENDING -> PROCESSING -> SHIPPED -> DELIVERED; CANCELLED is reachable
// from any non-terminal state.
func (s ShippingStatus) CanTransitionTo(next ShippingStatus) bool {
	if s == next {
		return true
	}
	if s.Terminal() {
		return false
	}
	if next == ShippingCancelled {
		return true
	}
	order := map[ShippingStatus]int{
		ShippingPending:    0,
		ShippingProcessing: 1,
		ShippingShipped:    2,
		ShippingDelivered:  3,
	}
	from, ok := order[s]
	to, ok2 := order[next]
	return ok && ok2 && to == from+1
}

// Shipping represents one shipment of a single unit of a product, backed by
// a stock row. Invariant: the stock row's ProductID equals the shipment's.
type Shipping struct {
	ID                uint           `json:"id" gorm:"primarykey"`
	Name              string         `json:"name" gorm:"type:varchar(100);not null"`
	Status            ShippingStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	Carrier           string         `json:"carrier" gorm:"type:varchar(100)"`
	EstimatedDelivery time.Time      `json:"estimated_delivery"`
	StockID           uint           `json:"stock_id" gorm:"index;not null"`
	ProductID         uint           `json:"product_id" gorm:"index;not null"`
	TenantID          uint           `json:"tenant_id" gorm:"index;not null;comment:'Tenant this shipment belongs to'"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
