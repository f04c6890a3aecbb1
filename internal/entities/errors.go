package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the service layer wraps exactly one of them.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrConflict          = errors.New("conflict")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDependency        = errors.New("dependency failure")
)

var (
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrDocumentNotFound = fmt.Errorf("document %w", ErrNotFound)

	ErrEmptyOrder        = fmt.Errorf("%w: order must contain at least one item", ErrInvalidInput)
	ErrInvalidQuantity   = fmt.Errorf("%w: item quantity must be between 1 and %d", ErrInvalidInput, MaxItemQuantity)
	ErrTotalTooLarge     = fmt.Errorf("%w: order total exceeds the allowed maximum", ErrInvalidInput)
	ErrMissingProduct    = fmt.Errorf("%w: item product code is required", ErrInvalidInput)
	ErrPastDeliveryDate  = fmt.Errorf("%w: delivery date must be today or later", ErrInvalidInput)
	ErrUnknownStatus     = fmt.Errorf("%w: unknown order status", ErrInvalidInput)
	ErrMissingCode       = fmt.Errorf("%w: product code is required", ErrInvalidInput)
	ErrInvalidPrice      = fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	ErrInvalidStock      = fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	ErrWeakPassword      = fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	ErrFileEmpty         = fmt.Errorf("%w: file is empty", ErrInvalidInput)
	ErrFileTooLarge      = fmt.Errorf("%w: file exceeds the maximum allowed size", ErrInvalidInput)
	ErrFileTypeForbidden = fmt.Errorf("%w: file type is not allowed", ErrInvalidInput)

	ErrNotOrderOwner   = fmt.Errorf("%w: order belongs to another user", ErrForbidden)
	ErrOrderNotPending = fmt.Errorf("%w: only pending orders can be cancelled", ErrInvalidState)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	ErrEmailTaken         = fmt.Errorf("%w: email already exists", ErrConflict)
	ErrProductCodeTaken   = fmt.Errorf("%w: product code already exists", ErrConflict)
)

// ErrorKind is the caller-visible category of an error.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindInvalidInput      ErrorKind = "invalid_input"
	KindForbidden         ErrorKind = "forbidden"
	KindUnauthorized      ErrorKind = "unauthorized"
	KindConflict          ErrorKind = "conflict"
	KindInvalidState      ErrorKind = "invalid_state"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindDependency        ErrorKind = "dependency_failure"
	KindInternal          ErrorKind = "internal"
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrNotFound, KindNotFound},
	{ErrInvalidInput, KindInvalidInput},
	{ErrForbidden, KindForbidden},
	{ErrUnauthorized, KindUnauthorized},
	{ErrConflict, KindConflict},
	{ErrInvalidState, KindInvalidState},
	{ErrInvalidTransition, KindInvalidTransition},
	{ErrDependency, KindDependency},
}

// KindOf classifies err. Unclassified errors are KindInternal.
func KindOf(err error) ErrorKind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// Retryable reports whether the caller may retry the failed operation.
func (k ErrorKind) Retryable() bool {
	return k == KindDependency
}

// Dependency marks err as a failure of an external collaborator,
// unless it already carries a domain kind.
func Dependency(op string, err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindInternal {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrDependency, err)
}
