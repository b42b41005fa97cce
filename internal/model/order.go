package model

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order represents a customer order for a product. Product and customer
// always belong to the same tenant as the order.
type Order struct {
	ID         uint           `json:"id" gorm:"primarykey"`
	Quantity   int            `json:"quantity" gorm:"not null"`
	Address    string         `json:"address" gorm:"type:text"`
	Status     OrderStatus    `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	ProductID  uint           `json:"product_id" gorm:"index;not null"`
	CustomerID uint           `json:"customer_id" gorm:"index;not null"`
	TenantID   uint           `json:"tenant_id" gorm:"index;not null;comment:'Tenant this order belongs to'"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
