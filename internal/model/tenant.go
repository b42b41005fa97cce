package model

import (
	"time"

	"gorm.io/gorm"
)

// Tenant represents the company that owns every other record in the system.
// This is the core of our multi-tenant architecture: all business entities
// carry a TenantID and are never visible outside it.
type Tenant struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
