package model

import (
	"time"

	"gorm.io/gorm"
)

// Stock tracks the on-hand quantity of a product from a supplier.
// Quantity never goes below zero: shipment creation decrements it and
// shipment reassignment gives the unit back to the previous stock row.
type Stock struct {
	ID         uint           `json:"id" gorm:"primarykey"`
	Quantity   int            `json:"quantity" gorm:"not null;default:0"`
	ProductID  uint           `json:"product_id" gorm:"index;not null"`
	SupplierID uint           `json:"supplier_id" gorm:"index"`
	TenantID   uint           `json:"tenant_id" gorm:"index;not null;comment:'Tenant this stock belongs to'"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
