package store

import "errors"

// Domain errors surfaced by the tenant-scoped store. Handlers translate these
// into the uniform response envelope; raw gorm errors never cross that
// boundary.
var (
	// ErrNotFoundOrForbidden is returned when a record does not exist or
	// belongs to another tenant. The two cases are deliberately conflated so
	// probing error messages cannot be used to enumerate other tenants' ids.
	ErrNotFoundOrForbidden = errors.New("record not found")

	// ErrCreationFailed is returned when the relation resolver could not
	// create a missing related row.
	ErrCreationFailed = errors.New("failed to create related record")

	// ErrInsufficientStock is returned when a shipment would take the stock
	// level below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrReferentialConflict is returned when a cross-entity business rule is
	// violated, e.g. deleting a customer that still has orders or pairing a
	// shipment with a stock row for a different product.
	ErrReferentialConflict = errors.New("conflicting related records")

	// ErrValidationFailed is returned when caller-supplied fields fail basic
	// constraints such as an empty name or an unknown status.
	ErrValidationFailed = errors.New("validation failed")
)
