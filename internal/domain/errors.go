// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a state conflict such as a duplicate entry.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates a required field is missing or malformed.
	// Validation failures are caught before any storage call is issued.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized indicates the caller has no valid session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller is authenticated but not allowed
	// to perform the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable indicates the storage backend failed.
	ErrUnavailable = errors.New("unavailable")
)

// SaveStage identifies which stage of a quote save failed.
type SaveStage string

// Save protocol stages, in execution order. A failure at any stage aborts
// the stages after it; stages already completed are not rolled back.
const (
	StageClientResolve SaveStage = "client_resolve"
	StageQuoteUpsert   SaveStage = "quote_upsert"
	StageItemReplace   SaveStage = "item_replace"
)

// SaveError tags a storage failure with the protocol stage it occurred in.
// An ItemReplace failure means the quote's metadata was already written but
// its items may be missing; callers surface that window, they do not hide it.
type SaveError struct {
	Stage SaveStage
	Cause error
}

// Error implements the error interface.
func (e *SaveError) Error() string {
	return fmt.Sprintf("save failed at %s: %v", e.Stage, e.Cause)
}

// Unwrap returns the underlying storage failure.
func (e *SaveError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is(err, ErrUnavailable) match any save-stage failure.
func (e *SaveError) Is(target error) bool {
	return target == ErrUnavailable
}

// NewSaveError wraps a storage failure with its protocol stage.
func NewSaveError(stage SaveStage, cause error) error {
	return &SaveError{Stage: stage, Cause: cause}
}

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError provides context for conflict errors.
type ConflictError struct {
	Entity string
	Reason string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error with context.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UnauthorizedError provides context for authentication failures.
type UnauthorizedError struct {
	Reason string
}

// Error implements the error interface.
func (e *UnauthorizedError) Error() string {
	if e.Reason != "" {
		return "unauthorized: " + e.Reason
	}

	return "unauthorized"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// NewUnauthorizedError creates an unauthorized error with context.
func NewUnauthorizedError(reason string) error {
	return &UnauthorizedError{Reason: reason}
}

// ForbiddenError provides context for authorization failures.
type ForbiddenError struct {
	Action string
	Reason string
}

// Error implements the error interface.
func (e *ForbiddenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("action %q forbidden: %s", e.Action, e.Reason)
	}

	return fmt.Sprintf("action %q forbidden", e.Action)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// NewForbiddenError creates a forbidden error with context.
func NewForbiddenError(action, reason string) error {
	return &ForbiddenError{Action: action, Reason: reason}
}

// UnavailableError provides context for storage failures.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnauthorized checks if an error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnavailable checks if an error is an unavailable or save-stage error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
