package types

import "errors"

// Store operation errors. Storage-engine failures are wrapped with
// fmt.Errorf("...: %w", err) and propagated unmodified otherwise.
var (
	ErrNotFound  = errors.New("entity not found")
	ErrInvalidID = errors.New("invalid entity ID")
)

// Input validation errors. Validation always happens before any mutating
// statement is issued, so a validation failure never leaves a half-applied
// write.
var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidItemType   = errors.New("invalid item type")
	ErrInvalidFilter     = errors.New("invalid filter")
)

// ErrDefaultProtected is returned when deleting a default-flagged taxonomy
// entry. Built-in project types and groups cannot be removed.
var ErrDefaultProtected = errors.New("default entry cannot be deleted")
