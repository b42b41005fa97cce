package store

import (
	"context"
	"errors"
	"strings"

	"commerce-service/internal/cache"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store is the tenant-scoped data access facade. Every read it performs is
// ANDed with the caller's tenant id and every create stamps the tenant id
// onto the new row, so no call site can forget the tenant predicate. The
// tenant id is always an explicit argument: nothing in this package reaches
// into ambient session state.
type Store struct {
	db    *gorm.DB
	cache cache.Invalidator
	log   *zap.Logger
}

// New creates a store over the given database handle.
func New(db *gorm.DB, inv cache.Invalidator, log *zap.Logger) *Store {
	if inv == nil {
		inv = cache.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, cache: inv, log: log}
}

// TenantScope constrains a query to rows owned by the given tenant.
func TenantScope(tenantID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

// ListParams carries optional pagination for list queries.
type ListParams struct {
	Offset int
	Limit  int
}

func (p ListParams) apply(db *gorm.DB) *gorm.DB {
	if p.Offset > 0 {
		db = db.Offset(p.Offset)
	}
	if p.Limit > 0 {
		db = db.Limit(p.Limit)
	}
	return db
}

// findMany returns all rows of T owned by the tenant matching the extra
// conditions.
func findMany[T any](s *Store, tenantID uint, params ListParams, conds ...any) ([]T, error) {
	var rows []T
	q := s.db.Scopes(TenantScope(tenantID))
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	if err := params.apply(q).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// countRows counts rows of T owned by the tenant matching the extra conditions.
func countRows[T any](s *Store, tenantID uint, conds ...any) (int64, error) {
	var n int64
	var zero T
	q := s.db.Model(&zero).Scopes(TenantScope(tenantID))
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// firstOwned is the ownership validator: it loads the row with the given id
// scoped to the tenant and returns the full row so callers avoid a second
// round-trip. A miss collapses to ErrNotFoundOrForbidden whether the row is
// absent or owned by another tenant; the distinction is only logged.
func firstOwned[T any](s *Store, db *gorm.DB, tenantID, id uint) (*T, error) {
	var row T
	err := db.Scopes(TenantScope(tenantID)).First(&row, id).Error
	if err == nil {
		return &row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Internal-only distinction for observability. The caller always sees
	// the same error either way.
	var n int64
	var zero T
	if db.Model(&zero).Where("id = ?", id).Count(&n); n > 0 {
		s.log.Warn("Cross-tenant access denied",
			zap.Uint("tenant_id", tenantID),
			zap.Uint("record_id", id))
	} else {
		s.log.Debug("Record not found",
			zap.Uint("tenant_id", tenantID),
			zap.Uint("record_id", id))
	}
	return nil, ErrNotFoundOrForbidden
}

// normalizeName trims a human-entered relation name for comparison. Matching
// is exact and case-insensitive; fuzzy matching is a UI concern and never
// decides which row gets persisted.
func normalizeName(name string) string {
	return strings.TrimSpace(name)
}

// invalidate signals the presentation layer that the named views are stale.
func (s *Store) invalidate(ctx context.Context, views ...string) {
	s.cache.Invalidate(ctx, views...)
}
