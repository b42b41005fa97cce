package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents the user model stored in the database. A user belongs to
// at most one tenant at a time; TenantID is nil until a tenant is provisioned
// for the user on their first tenant-requiring action.
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Email     string         `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Name      string         `json:"name" gorm:"type:varchar(100)"`
	Password  string         `json:"-" gorm:"type:varchar(255)"`
	TenantID  *uint          `json:"tenant_id,omitempty" gorm:"index"`
	Role      string         `json:"role" gorm:"type:varchar(50);default:'member'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
