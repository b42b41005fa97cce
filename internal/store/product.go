package store

import (
	"context"

	"commerce-service/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductInput carries caller-supplied product fields. Category, brand and
// supplier arrive as human-entered names and are resolved to tenant-scoped
// rows; empty names fall back to the tenant's default rows on creation and
// leave the reference unchanged on update.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Brand       string
	Supplier    string
}

// ListProducts returns the tenant's products.
func (s *Store) ListProducts(ctx context.Context, tenantID uint, params ListParams) ([]model.Product, error) {
	return findMany[model.Product](s, tenantID, params)
}

// GetProduct returns one product owned by the tenant.
func (s *Store) GetProduct(ctx context.Context, tenantID, id uint) (*model.Product, error) {
	return firstOwned[model.Product](s, s.db.WithContext(ctx), tenantID, id)
}

// CountProducts counts the tenant's products.
func (s *Store) CountProducts(ctx context.Context, tenantID uint) (int64, error) {
	return countRows[model.Product](s, tenantID)
}

// CreateProduct resolves the named relations and inserts the product in one
// transaction, all stamped with the tenant id.
func (s *Store) CreateProduct(ctx context.Context, tenantID uint, in ProductInput) (*model.Product, error) {
	name := normalizeName(in.Name)
	if name == "" || in.Price < 0 {
		return nil, ErrValidationFailed
	}

	category := in.Category
	if normalizeName(category) == "" {
		category = DefaultCategoryName
	}
	brand := in.Brand
	if normalizeName(brand) == "" {
		brand = DefaultBrandName
	}
	supplier := in.Supplier
	if normalizeName(supplier) == "" {
		supplier = DefaultSupplierName
	}

	var product model.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryID, err := resolveCategory(tx, tenantID, category)
		if err != nil {
			return err
		}
		brandID, err := resolveBrand(tx, tenantID, brand)
		if err != nil {
			return err
		}
		supplierID, err := resolveSupplier(tx, tenantID, supplier, nil)
		if err != nil {
			return err
		}

		product = model.Product{
			Name:        name,
			Description: in.Description,
			Price:       in.Price,
			TenantID:    tenantID,
			CategoryID:  categoryID,
			BrandID:     brandID,
			SupplierID:  supplierID,
		}
		return tx.Create(&product).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Product created",
		zap.Uint("tenant_id", tenantID),
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name))
	s.invalidate(ctx, "products")
	return &product, nil
}

// UpdateProduct validates ownership, re-resolves any renamed relations and
// saves the product. The tenant reference is never altered.
func (s *Store) UpdateProduct(ctx context.Context, tenantID, id uint, in ProductInput) (*model.Product, error) {
	name := normalizeName(in.Name)
	if name == "" || in.Price < 0 {
		return nil, ErrValidationFailed
	}

	var updated *model.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := firstOwned[model.Product](s, tx, tenantID, id)
		if err != nil {
			return err
		}

		product.Name = name
		product.Description = in.Description
		product.Price = in.Price

		if normalizeName(in.Category) != "" {
			if product.CategoryID, err = resolveCategory(tx, tenantID, in.Category); err != nil {
				return err
			}
		}
		if normalizeName(in.Brand) != "" {
			if product.BrandID, err = resolveBrand(tx, tenantID, in.Brand); err != nil {
				return err
			}
		}
		if normalizeName(in.Supplier) != "" {
			if product.SupplierID, err = resolveSupplier(tx, tenantID, in.Supplier, nil); err != nil {
				return err
			}
		}

		updated = product
		return tx.Save(product).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, "products")
	return updated, nil
}

// DeleteProduct validates ownership and removes the product.
func (s *Store) DeleteProduct(ctx context.Context, tenantID, id uint) error {
	db := s.db.WithContext(ctx)
	product, err := firstOwned[model.Product](s, db, tenantID, id)
	if err != nil {
		return err
	}
	if err := db.Delete(product).Error; err != nil {
		return err
	}

	s.log.Info("Product deleted",
		zap.Uint("tenant_id", tenantID),
		zap.Uint("product_id", id))
	s.invalidate(ctx, "products")
	return nil
}
