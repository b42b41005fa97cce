package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"commerce-service/internal/model"

	"gorm.io/gorm"
)

// Default relation names used when a product is created implicitly and no
// category, brand or supplier is given. The names double as idempotency keys:
// resolving them twice for the same tenant always lands on the same rows.
const (
	DefaultCategoryName = "Default Category"
	DefaultBrandName    = "Default Brand"
	DefaultSupplierName = "Default Supplier"
)

// The relation resolver maps a human-entered name to a tenant-scoped row id,
// creating the row when absent. Matching is trimmed, case-insensitive and
// exact, and always constrained to the caller's tenant: an identically named
// row under another tenant is never returned. An existing row is returned
// unchanged; resolution never updates fields as a side effect.

func resolveCategory(db *gorm.DB, tenantID uint, name string) (uint, error) {
	name = normalizeName(name)
	if name == "" {
		return 0, ErrValidationFailed
	}

	var category model.Category
	err := db.Where("tenant_id = ? AND LOWER(name) = LOWER(?)", tenantID, name).First(&category).Error
	if err == nil {
		return category.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	category = model.Category{Name: name, TenantID: tenantID}
	if err := db.Create(&category).Error; err != nil {
		return 0, fmt.Errorf("%w: category %q: %v", ErrCreationFailed, name, err)
	}
	return category.ID, nil
}

func resolveBrand(db *gorm.DB, tenantID uint, name string) (uint, error) {
	name = normalizeName(name)
	if name == "" {
		return 0, ErrValidationFailed
	}

	var brand model.Brand
	err := db.Where("tenant_id = ? AND LOWER(name) = LOWER(?)", tenantID, name).First(&brand).Error
	if err == nil {
		return brand.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	brand = model.Brand{Name: name, TenantID: tenantID}
	if err := db.Create(&brand).Error; err != nil {
		return 0, fmt.Errorf("%w: brand %q: %v", ErrCreationFailed, name, err)
	}
	return brand.ID, nil
}

// resolveSupplier optionally carries contact details that are only applied
// when the supplier has to be created.
func resolveSupplier(db *gorm.DB, tenantID uint, name string, contact *model.Supplier) (uint, error) {
	name = normalizeName(name)
	if name == "" {
		return 0, ErrValidationFailed
	}

	var supplier model.Supplier
	err := db.Where("tenant_id = ? AND LOWER(name) = LOWER(?)", tenantID, name).First(&supplier).Error
	if err == nil {
		return supplier.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	supplier = model.Supplier{Name: name, TenantID: tenantID}
	if contact != nil {
		supplier.ContactPerson = contact.ContactPerson
		supplier.Email = contact.Email
		supplier.Phone = contact.Phone
	}
	if err := db.Create(&supplier).Error; err != nil {
		return 0, fmt.Errorf("%w: supplier %q: %v", ErrCreationFailed, name, err)
	}
	return supplier.ID, nil
}

// resolveProduct finds a product by name or creates a placeholder one wired
// to the tenant's default category, brand and supplier.
func resolveProduct(db *gorm.DB, tenantID uint, name string, price float64) (uint, error) {
	name = normalizeName(name)
	if name == "" {
		return 0, ErrValidationFailed
	}

	var product model.Product
	err := db.Where("tenant_id = ? AND LOWER(name) = LOWER(?)", tenantID, name).First(&product).Error
	if err == nil {
		return product.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	categoryID, err := resolveCategory(db, tenantID, DefaultCategoryName)
	if err != nil {
		return 0, err
	}
	brandID, err := resolveBrand(db, tenantID, DefaultBrandName)
	if err != nil {
		return 0, err
	}
	supplierID, err := resolveSupplier(db, tenantID, DefaultSupplierName, nil)
	if err != nil {
		return 0, err
	}

	product = model.Product{
		Name:       name,
		Price:      price,
		TenantID:   tenantID,
		CategoryID: categoryID,
		BrandID:    brandID,
		SupplierID: supplierID,
	}
	if err := db.Create(&product).Error; err != nil {
		return 0, fmt.Errorf("%w: product %q: %v", ErrCreationFailed, name, err)
	}
	return product.ID, nil
}

// resolveCustomer finds a customer by name or creates one with a synthesized
// placeholder email derived from the name, so repeated resolution stays
// idempotent per tenant.
func resolveCustomer(db *gorm.DB, tenantID uint, name string) (uint, error) {
	name = normalizeName(name)
	if name == "" {
		return 0, ErrValidationFailed
	}

	var customer model.Customer
	err := db.Where("tenant_id = ? AND LOWER(name) = LOWER(?)", tenantID, name).First(&customer).Error
	if err == nil {
		return customer.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	customer = model.Customer{
		Name:     name,
		Email:    placeholderEmail(name),
		TenantID: tenantID,
	}
	if err := db.Create(&customer).Error; err != nil {
		return 0, fmt.Errorf("%w: customer %q: %v", ErrCreationFailed, name, err)
	}
	return customer.ID, nil
}

func placeholderEmail(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), ".")
	return slug + "@placeholder.local"
}

// ResolveCategory maps a category name to a tenant-scoped id, creating the
// category when absent.
func (s *Store) ResolveCategory(ctx context.Context, tenantID uint, name string) (uint, error) {
	return resolveCategory(s.db.WithContext(ctx), tenantID, name)
}

// ResolveBrand maps a brand name to a tenant-scoped id, creating the brand
// when absent.
func (s *Store) ResolveBrand(ctx context.Context, tenantID uint, name string) (uint, error) {
	return resolveBrand(s.db.WithContext(ctx), tenantID, name)
}

// ResolveSupplier maps a supplier name to a tenant-scoped id, creating the
// supplier when absent. Contact details are used only on creation.
func (s *Store) ResolveSupplier(ctx context.Context, tenantID uint, name string, contact *model.Supplier) (uint, error) {
	return resolveSupplier(s.db.WithContext(ctx), tenantID, name, contact)
}
