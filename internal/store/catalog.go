package store

import (
	"context"

	"commerce-service/internal/model"
)

// Catalog operations cover the simple tenant-owned lookup entities: category,
// brand and supplier. Creation goes through the relation resolver so an
// explicit create and an implicit one land on the same row.

// ListCategories returns the tenant's categories.
func (s *Store) ListCategories(ctx context.Context, tenantID uint, params ListParams) ([]model.Category, error) {
	return findMany[model.Category](s, tenantID, params)
}

// GetCategory returns one category owned by the tenant.
func (s *Store) GetCategory(ctx context.Context, tenantID, id uint) (*model.Category, error) {
	return firstOwned[model.Category](s, s.db.WithContext(ctx), tenantID, id)
}

// RenameCategory validates ownership and updates the category name.
func (s *Store) RenameCategory(ctx context.Context, tenantID, id uint, name string) (*model.Category, error) {
	name = normalizeName(name)
	if name == "" {
		return nil, ErrValidationFailed
	}
	db := s.db.WithContext(ctx)
	category, err := firstOwned[model.Category](s, db, tenantID, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	if err := db.Save(category).Error; err != nil {
		return nil, err
	}
	s.invalidate(ctx, "categories")
	return category, nil
}

// DeleteCategory validates ownership and removes the category. Products keep
// their category id; the reference dangles like in any soft-deleted lookup.
func (s *Store) DeleteCategory(ctx context.Context, tenantID, id uint) error {
	db := s.db.WithContext(ctx)
	category, err := firstOwned[model.Category](s, db, tenantID, id)
	if err != nil {
		return err
	}
	if err := db.Delete(category).Error; err != nil {
		return err
	}
	s.invalidate(ctx, "categories")
	return nil
}

// ListBrands returns the tenant's brands.
func (s *Store) ListBrands(ctx context.Context, tenantID uint, params ListParams) ([]model.Brand, error) {
	return findMany[model.Brand](s, tenantID, params)
}

// GetBrand returns one brand owned by the tenant.
func (s *Store) GetBrand(ctx context.Context, tenantID, id uint) (*model.Brand, error) {
	return firstOwned[model.Brand](s, s.db.WithContext(ctx), tenantID, id)
}

// RenameBrand validates ownership and updates the brand name.
func (s *Store) RenameBrand(ctx context.Context, tenantID, id uint, name string) (*model.Brand, error) {
	name = normalizeName(name)
	if name == "" {
		return nil, ErrValidationFailed
	}
	db := s.db.WithContext(ctx)
	brand, err := firstOwned[model.Brand](s, db, tenantID, id)
	if err != nil {
		return nil, err
	}
	brand.Name = name
	if err := db.Save(brand).Error; err != nil {
		return nil, err
	}
	s.invalidate(ctx, "brands")
	return brand, nil
}

// DeleteBrand validates ownership and removes the brand.
func (s *Store) DeleteBrand(ctx context.Context, tenantID, id uint) error {
	db := s.db.WithContext(ctx)
	brand, err := firstOwned[model.Brand](s, db, tenantID, id)
	if err != nil {
		return err
	}
	if err := db.Delete(brand).Error; err != nil {
		return err
	}
	s.invalidate(ctx, "brands")
	return nil
}

// ListSuppliers returns the tenant's suppliers.
func (s *Store) ListSuppliers(ctx context.Context, tenantID uint, params ListParams) ([]model.Supplier, error) {
	return findMany[model.Supplier](s, tenantID, params)
}

// GetSupplier returns one supplier owned by the tenant.
func (s *Store) GetSupplier(ctx context.Context, tenantID, id uint) (*model.Supplier, error) {
	return firstOwned[model.Supplier](s, s.db.WithContext(ctx), tenantID, id)
}

// UpdateSupplier validates ownership and updates the supplier's name and
// contact details.
func (s *Store) UpdateSupplier(ctx context.Context, tenantID, id uint, in model.Supplier) (*model.Supplier, error) {
	name := normalizeName(in.Name)
	if name == "" {
		return nil, ErrValidationFailed
	}
	db := s.db.WithContext(ctx)
	supplier, err := firstOwned[model.Supplier](s, db, tenantID, id)
	if err != nil {
		return nil, err
	}
	supplier.Name = name
	supplier.ContactPerson = in.ContactPerson
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	if err := db.Save(supplier).Error; err != nil {
		return nil, err
	}
	s.invalidate(ctx, "suppliers")
	return supplier, nil
}

// DeleteSupplier validates ownership and removes the supplier.
func (s *Store) DeleteSupplier(ctx context.Context, tenantID, id uint) error {
	db := s.db.WithContext(ctx)
	supplier, err := firstOwned[model.Supplier](s, db, tenantID, id)
	if err != nil {
		return err
	}
	if err := db.Delete(supplier).Error; err != nil {
		return err
	}
	s.invalidate(ctx, "suppliers")
	return nil
}
