package store

import (
	"context"

	"commerce-service/internal/model"

	"go.uber.org/zap"
)

// StockInput carries caller-supplied stock fields. The product is referenced
// by id and must already belong to the tenant; the supplier may be named and
// is resolved on demand.
type StockInput struct {
	ProductID uint
	Supplier  string
	Quantity  int
}

// ListStocks returns the tenant's stock rows.
func (s *Store) ListStocks(ctx context.Context, tenantID uint, params ListParams) ([]model.Stock, error) {
	return findMany[model.Stock](s, tenantID, params)
}

// GetStock returns one stock row owned by the tenant.
func (s *Store) GetStock(ctx context.Context, tenantID, id uint) (*model.Stock, error) {
	return firstOwned[model.Stock](s, s.db.WithContext(ctx), tenantID, id)
}

// CountStocks counts the tenant's stock rows.
func (s *Store) CountStocks(ctx context.Context, tenantID uint) (int64, error) {
	return countRows[model.Stock](s, tenantID)
}

// CreateStock inserts a stock row stamped with the tenant id. The referenced
// product must be owned by the tenant; the quantity must not be negative.
func (s *Store) CreateStock(ctx context.Context, tenantID uint, in StockInput) (*model.Stock, error) {
	if in.Quantity < 0 {
		return nil, ErrValidationFailed
	}

	db := s.db.WithContext(ctx)
	if _, err := firstOwned[model.Product](s, db, tenantID, in.ProductID); err != nil {
		return nil, err
	}

	stock := model.Stock{
		Quantity:  in.Quantity,
		ProductID: in.ProductID,
		TenantID:  tenantID,
	}
	if normalizeName(in.Supplier) != "" {
		supplierID, err := resolveSupplier(db, tenantID, in.Supplier, nil)
		if err != nil {
			return nil, err
		}
		stock.SupplierID = supplierID
	}

	if err := db.Create(&stock).Error; err != nil {
		return nil, err
	}

	s.log.Info("Stock created",
		zap.Uint("tenant_id", tenantID),
		zap.Uint("stock_id", stock.ID),
		zap.Uint("product_id", stock.ProductID),
		zap.Int("quantity", stock.Quantity))
	s.invalidate(ctx, "stocks")
	return &stock, nil
}

// UpdateStock validates ownership and saves the new quantity and supplier.
// The product and tenant references are never altered.
func (s *Store) UpdateStock(ctx context.Context, tenantID, id uint, in StockInput) (*model.Stock, error) {
	if in.Quantity < 0 {
		return nil, ErrValidationFailed
	}

	db := s.db.WithContext(ctx)
	stock, err := firstOwned[model.Stock](s, db, tenantID, id)
	if err != nil {
		return nil, err
	}

	stock.Quantity = in.Quantity
	if normalizeName(in.Supplier) != "" {
		if stock.SupplierID, err = resolveSupplier(db, tenantID, in.Supplier, nil); err != nil {
			return nil, err
		}
	}
	if err := db.Save(stock).Error; err != nil {
		return nil, err
	}

	s.invalidate(ctx, "stocks")
	return stock, nil
}

// DeleteStock validates ownership and removes the stock row unless shipments
// still reference it.
func (s *Store) DeleteStock(ctx context.Context, tenantID, id uint) error {
	db := s.db.WithContext(ctx)
	stock, err := firstOwned[model.Stock](s, db, tenantID, id)
	if err != nil {
		return err
	}

	shipments, err := countRows[model.Shipping](s, tenantID, "stock_id = ?", id)
	if err != nil {
		return err
	}
	if shipments > 0 {
		return ErrReferentialConflict
	}

	if err := db.Delete(stock).Error; err != nil {
		return err
	}
	s.invalidate(ctx, "stocks")
	return nil
}
