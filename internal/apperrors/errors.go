// Package apperrors defines the sentinel errors shared by the service and
// handler layers. Services wrap these with fmt.Errorf("%w") to add context;
// handlers map them to HTTP statuses with errors.Is.
package apperrors

import "errors"

var (
	// ErrNotFound indicates a requested entity does not exist (404).
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates a missing or invalid session token (401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the session lacks the required role (403).
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput indicates a client-supplied value failed validation (400).
	ErrInvalidInput = errors.New("invalid input")
)
