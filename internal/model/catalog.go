package model

import (
	"time"

	"gorm.io/gorm"
)

// Category represents a product category. Names are unique per tenant, not
// globally: two tenants can each own a "Default Category" with different ids.
type Category struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_tenant_name"`
	TenantID  uint           `json:"tenant_id" gorm:"not null;uniqueIndex:idx_categories_tenant_name;comment:'Tenant this category belongs to'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Brand represents a product brand, unique per tenant by name.
type Brand struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_brands_tenant_name"`
	TenantID  uint           `json:"tenant_id" gorm:"not null;uniqueIndex:idx_brands_tenant_name;comment:'Tenant this brand belongs to'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Supplier represents the supplier model stored in the database.
type Supplier struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_suppliers_tenant_name"`
	TenantID      uint           `json:"tenant_id" gorm:"not null;uniqueIndex:idx_suppliers_tenant_name;comment:'Tenant this supplier belongs to'"`
	ContactPerson string         `json:"contact_person" gorm:"type:varchar(100)"`
	Email         string         `json:"email" gorm:"type:varchar(100)"`
	Phone         string         `json:"phone" gorm:"type:varchar(20)"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
