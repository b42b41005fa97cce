package model

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a customer of the tenant. Name and email are unique
// within a tenant only.
type Customer struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_customers_tenant_name"`
	Email     string         `json:"email" gorm:"type:varchar(100);not null;uniqueIndex:idx_customers_tenant_email"`
	Address   string         `json:"address" gorm:"type:text"`
	TenantID  uint           `json:"tenant_id" gorm:"not null;uniqueIndex:idx_customers_tenant_name;uniqueIndex:idx_customers_tenant_email;comment:'Tenant this customer belongs to'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
