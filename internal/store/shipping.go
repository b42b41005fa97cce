package store

import (
	"context"
	"time"

	"commerce-service/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ShippingInput carries caller-supplied shipment fields.
type ShippingInput struct {
	Name              string
	Carrier           string
	EstimatedDelivery time.Time
	StockID           uint
	ProductID         uint
	Status            model.ShippingStatus
}

// ListShippings returns the tenant's shipments.
func (s *Store) ListShippings(ctx context.Context, tenantID uint, params ListParams) ([]model.Shipping, error) {
	return findMany[model.Shipping](s, tenantID, params)
}

// GetShipping returns one shipment owned by the tenant.
func (s *Store) GetShipping(ctx context.Context, tenantID, id uint) (*model.Shipping, error) {
	return firstOwned[model.Shipping](s, s.db.WithContext(ctx), tenantID, id)
}

// CountShippings counts the tenant's shipments.
func (s *Store) CountShippings(ctx context.Context, tenantID uint) (int64, error) {
	return countRows[model.Shipping](s, tenantID)
}

// decrementStock takes one unit from the stock row with a guarded update.
// The quantity > 0 predicate makes concurrent decrements safe: whichever
// transaction loses the race sees zero rows affected and fails without
// writing.
func (s *Store) decrementStock(tx *gorm.DB, tenantID, stockID uint) error {
	res := tx.Model(&model.Stock{}).
		Where("id = ? AND tenant_id = ? AND quantity > 0", stockID, tenantID).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (s *Store) incrementStock(tx *gorm.DB, tenantID, stockID uint) error {
	res := tx.Model(&model.Stock{}).
		Where("id = ? AND tenant_id = ?", stockID, tenantID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFoundOrForbidden
	}
	return nil
}

// CreateShipping creates a shipment and decrements the backing stock by one
// unit in a single transaction. The stock must belong to the tenant, must be
// for the same product as the shipment and must have at least one unit left;
// otherwise nothing is written.
func (s *Store) CreateShipping(ctx context.Context, tenantID uint, in ShippingInput) (*model.Shipping, error) {
	if normalizeName(in.Name) == "" {
		return nil, ErrValidationFailed
	}
	status := in.Status
	if status == "" {
		status = model.ShippingPending
	}
	if !status.Valid() {
		return nil, ErrValidationFailed
	}

	var shipping model.Shipping
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stock, err := firstOwned[model.Stock](s, tx, tenantID, in.StockID)
		if err != nil {
			return err
		}
		if stock.ProductID != in.ProductID {
			return ErrReferentialConflict
		}
		if err := s.decrementStock(tx, tenantID, in.StockID); err != nil {
			return err
		}

		shipping = model.Shipping{
			Name:              normalizeName(in.Name),
			Status:            status,
			Carrier:           in.Carrier,
			EstimatedDelivery: in.EstimatedDelivery,
			StockID:           in.StockID,
			ProductID:         in.ProductID,
			TenantID:          tenantID,
		}
		return tx.Create(&shipping).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Shipment created",
		zap.Uint("tenant_id", tenantID),
		zap.Uint("shipping_id", shipping.ID),
		zap.Uint("stock_id", shipping.StockID))
	s.invalidate(ctx, "shippings", "stocks")
	return &shipping, nil
}

// UpdateShipping validates ownership and saves new shipment fields. A status
// change must follow the shipment state machine. Changing the stock reference
// reassigns the reserved unit: the new stock is decremented and the old one
// incremented in the same transaction, so both writes land or neither does.
// The new stock must be owned by the tenant and match the shipment's product.
func (s *Store) UpdateShipping(ctx context.Context, tenantID, id uint, in ShippingInput) (*model.Shipping, error) {
	if in.Status != "" && !in.Status.Valid() {
		return nil, ErrValidationFailed
	}

	var updated *model.Shipping
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shipping, err := firstOwned[model.Shipping](s, tx, tenantID, id)
		if err != nil {
			return err
		}

		if in.Status != "" && in.Status != shipping.Status {
			if !shipping.Status.CanTransitionTo(in.Status) {
				return ErrValidationFailed
			}
			shipping.Status = in.Status
		}
		if normalizeName(in.Name) != "" {
			shipping.Name = normalizeName(in.Name)
		}
		if in.Carrier != "" {
			shipping.Carrier = in.Carrier
		}
		if !in.EstimatedDelivery.IsZero() {
			shipping.EstimatedDelivery = in.EstimatedDelivery
		}

		if in.StockID != 0 && in.StockID != shipping.StockID {
			newStock, err := firstOwned[model.Stock](s, tx, tenantID, in.StockID)
			if err != nil {
				return err
			}
			if newStock.ProductID != shipping.ProductID {
				return ErrReferentialConflict
			}
			if err := s.decrementStock(tx, tenantID, in.StockID); err != nil {
				return err
			}
			if err := s.incrementStock(tx, tenantID, shipping.StockID); err != nil {
				return err
			}
			shipping.StockID = in.StockID
		}

		updated = shipping
		return tx.Save(shipping).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, "shippings", "stocks")
	return updated, nil
}

// DeleteShipping validates ownership and removes the shipment.
func (s *Store) DeleteShipping(ctx context.Context, tenantID, id uint) error {
	db := s.db.WithContext(ctx)
	shipping, err := firstOwned[model.Shipping](s, db, tenantID, id)
	if err != nil {
		return err
	}
	if err := db.Delete(shipping).Error; err != nil {
		return err
	}

	s.log.Info("Shipment deleted",
		zap.Uint("tenant_id", tenantID),
		zap.Uint("shipping_id", id))
	s.invalidate(ctx, "shippings")
	return nil
}
