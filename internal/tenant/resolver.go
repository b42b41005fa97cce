// Package tenant derives the acting tenant for a request. Every identity maps
// to at most one tenant; the first tenant-requiring action by an identity
// without one provisions a tenant on the fly.
package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"commerce-service/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrUnauthenticated is returned when no usable identity is supplied.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrProvisioningFailed is returned when the fallback tenant for a
	// tenant-less identity could not be created.
	ErrProvisioningFailed = errors.New("tenant provisioning failed")
)

// Identity is the authenticated principal as handed over by the auth layer.
// Only the email is required; the name feeds the default tenant name.
type Identity struct {
	Email string
	Name  string
}

// Resolver turns identities into tenant ids, provisioning users and tenants
// lazily.
type Resolver struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewResolver creates a resolver over the given database handle.
func NewResolver(db *gorm.DB, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{db: db, log: log}
}

// ResolveTenantID returns the tenant id for the identity. An unknown email
// gets a user row; a user without a tenant gets a freshly provisioned tenant,
// created and associated in one transaction. Repeated calls for the same
// identity return the same id.
func (r *Resolver) ResolveTenantID(ctx context.Context, identity Identity) (uint, error) {
	email := strings.TrimSpace(strings.ToLower(identity.Email))
	if email == "" {
		return 0, ErrUnauthenticated
	}

	var tenantID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		err := tx.Where("email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = model.User{Email: email, Name: identity.Name}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
			}
			r.log.Info("User created for identity", zap.String("email", email))
		} else if err != nil {
			return err
		}

		if user.TenantID != nil {
			tenantID = *user.TenantID
			return nil
		}

		t := model.Tenant{Name: defaultTenantName(identity, email)}
		if err := tx.Create(&t).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
		}
		if err := tx.Model(&user).Update("tenant_id", t.ID).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
		}

		r.log.Info("Tenant provisioned",
			zap.Uint("tenant_id", t.ID),
			zap.String("email", email),
			zap.String("tenant_name", t.Name))
		tenantID = t.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return tenantID, nil
}

// defaultTenantName derives a display name for a lazily provisioned tenant
// from the identity's name, falling back to the email local part.
func defaultTenantName(identity Identity, email string) string {
	if name := strings.TrimSpace(identity.Name); name != "" {
		return name + "'s Company"
	}
	local := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		local = email[:i]
	}
	return local + "'s Company"
}
