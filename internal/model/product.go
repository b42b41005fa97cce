package model

import (
	"time"

	"gorm.io/gorm"
)

// Product represents the product master data. Category, brand and supplier
// references, when set, always point at rows of the same tenant.
type Product struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"not null"`
	TenantID    uint           `json:"tenant_id" gorm:"index;not null;comment:'Tenant this product belongs to'"`
	CategoryID  uint           `json:"category_id" gorm:"index"`
	BrandID     uint           `json:"brand_id" gorm:"index"`
	SupplierID  uint           `json:"supplier_id" gorm:"index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
