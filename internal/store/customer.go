package store

import (
	"context"

	"commerce-service/internal/model"

	"go.uber.org/zap"
)

// CustomerInput carries caller-supplied customer fields.
type CustomerInput struct {
	Name    string
	Email   string
	Address string
}

// ListCustomers returns the tenant's customers.
func (s *Store) ListCustomers(ctx context.Context, tenantID uint, params ListParams) ([]model.Customer, error) {
	return findMany[model.Customer](s, tenantID, params)
}

// GetCustomer returns one customer owned by the tenant.
func (s *Store) GetCustomer(ctx context.Context, tenantID, id uint) (*model.Customer, error) {
	return firstOwned[model.Customer](s, s.db.WithContext(ctx), tenantID, id)
}

// CountCustomers counts the tenant's customers.
func (s *Store) CountCustomers(ctx context.Context, tenantID uint) (int64, error) {
	return countRows[model.Customer](s, tenantID)
}

// CreateCustomer inserts a customer stamped with the tenant id. Name and
// email uniqueness is per tenant and enforced by the schema.
func (s *Store) CreateCustomer(ctx context.Context, tenantID uint, in CustomerInput) (*model.Customer, error) {
	name := normalizeName(in.Name)
	if name == "" || normalizeName(in.Email) == "" {
		return nil, ErrValidationFailed
	}

	customer := model.Customer{
		Name:     name,
		Email:    normalizeName(in.Email),
		Address:  in.Address,
		TenantID: tenantID,
	}
	if err := s.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	s.log.Info("Customer created",
		zap.Uint("tenant_id", tenantID),
		zap.Uint("customer_id", customer.ID),
		zap.String("name", customer.Name))
	s.invalidate(ctx, "customers")
	return &customer, nil
}

// UpdateCustomer validates ownership and saves the new fields. The tenant
// reference is never altered.
func (s *Store) UpdateCustomer(ctx context.Context, tenantID, id uint, in CustomerInput) (*model.Customer, error) {
	name := normalizeName(in.Name)
	if name == "" || normalizeName(in.Email) == "" {
		return nil, ErrValidationFailed
	}

	db := s.db.WithContext(ctx)
	customer, err := firstOwned[model.Customer](s, db, tenantID, id)
	if err != nil {
		return nil, err
	}

	customer.Name = name
	customer.Email = normalizeName(in.Email)
	customer.Address = in.Address
	if err := db.Save(customer).Error; err != nil {
		return nil, err
	}

	s.invalidate(ctx, "customers")
	return customer, nil
}

// DeleteCustomer validates ownership and removes the customer unless orders
// still reference it, in which case the delete is rejected and the row stays.
func (s *Store) DeleteCustomer(ctx context.Context, tenantID, id uint) error {
	db := s.db.WithContext(ctx)
	customer, err := firstOwned[model.Customer](s, db, tenantID, id)
	if err != nil {
		return err
	}

	orders, err := countRows[model.Order](s, tenantID, "customer_id = ?", id)
	if err != nil {
		return err
	}
	if orders > 0 {
		s.log.Warn("Customer delete rejected, orders exist",
			zap.Uint("tenant_id", tenantID),
			zap.Uint("customer_id", id),
			zap.Int64("orders", orders))
		return ErrReferentialConflict
	}

	if err := db.Delete(customer).Error; err != nil {
		return err
	}
	s.invalidate(ctx, "customers")
	return nil
}
