package store

import (
	"context"

	"commerce-service/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderInput carries caller-supplied order fields. Product and customer are
// referenced by name and resolved to tenant-scoped rows; missing ones are
// created as placeholders (a product gets the default category, brand and
// supplier chain, a customer gets a synthesized email) inside the same
// transaction as the order insert.
type OrderInput struct {
	Product      string
	ProductPrice float64
	Customer     string
	Quantity     int
	Address      string
	Status       model.OrderStatus
}

// ListOrders returns the tenant's orders.
func (s *Store) ListOrders(ctx context.Context, tenantID uint, params ListParams) ([]model.Order, error) {
	return findMany[model.Order](s, tenantID, params)
}

// GetOrder returns one order owned by the tenant.
func (s *Store) GetOrder(ctx context.Context, tenantID, id uint) (*model.Order, error) {
	return firstOwned[model.Order](s, s.db.WithContext(ctx), tenantID, id)
}

// CountOrders counts the tenant's orders.
func (s *Store) CountOrders(ctx context.Context, tenantID uint) (int64, error) {
	return countRows[model.Order](s, tenantID)
}

// CreateOrder resolves the named product and customer and inserts the order,
// all in one transaction so a failed insert leaves no half-created
// placeholder chain behind.
func (s *Store) CreateOrder(ctx context.Context, tenantID uint, in OrderInput) (*model.Order, error) {
	if normalizeName(in.Product) == "" || normalizeName(in.Customer) == "" || in.Quantity <= 0 {
		return nil, ErrValidationFailed
	}
	status := in.Status
	if status == "" {
		status = model.OrderPending
	}
	if !status.Valid() {
		return nil, ErrValidationFailed
	}

	var order model.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productID, err := resolveProduct(tx, tenantID, in.Product, in.ProductPrice)
		if err != nil {
			return err
		}
		customerID, err := resolveCustomer(tx, tenantID, in.Customer)
		if err != nil {
			return err
		}

		order = model.Order{
			Quantity:   in.Quantity,
			Address:    in.Address,
			Status:     status,
			ProductID:  productID,
			CustomerID: customerID,
			TenantID:   tenantID,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Order created",
		zap.Uint("tenant_id", tenantID),
		zap.Uint("order_id", order.ID),
		zap.Uint("product_id", order.ProductID),
		zap.Uint("customer_id", order.CustomerID))
	s.invalidate(ctx, "orders", "products", "customers")
	return &order, nil
}

// UpdateOrder validates ownership, re-resolves renamed references and saves
// the order. The tenant reference is never altered.
func (s *Store) UpdateOrder(ctx context.Context, tenantID, id uint, in OrderInput) (*model.Order, error) {
	if in.Quantity <= 0 {
		return nil, ErrValidationFailed
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, ErrValidationFailed
	}

	var updated *model.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := firstOwned[model.Order](s, tx, tenantID, id)
		if err != nil {
			return err
		}

		order.Quantity = in.Quantity
		order.Address = in.Address
		if in.Status != "" {
			order.Status = in.Status
		}
		if normalizeName(in.Product) != "" {
			if order.ProductID, err = resolveProduct(tx, tenantID, in.Product, in.ProductPrice); err != nil {
				return err
			}
		}
		if normalizeName(in.Customer) != "" {
			if order.CustomerID, err = resolveCustomer(tx, tenantID, in.Customer); err != nil {
				return err
			}
		}

		updated = order
		return tx.Save(order).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, "orders")
	return updated, nil
}

// DeleteOrder validates ownership and removes the order.
func (s *Store) DeleteOrder(ctx context.Context, tenantID, id uint) error {
	db := s.db.WithContext(ctx)
	order, err := firstOwned[model.Order](s, db, tenantID, id)
	if err != nil {
		return err
	}
	if err := db.Delete(order).Error; err != nil {
		return err
	}

	s.log.Info("Order deleted",
		zap.Uint("tenant_id", tenantID),
		zap.Uint("order_id", id))
	s.invalidate(ctx, "orders")
	return nil
}
