// Package service holds the error taxonomy shared by the storefront
// services. Callers wrap these sentinels with fmt.Errorf("%w: ...") and the
// HTTP layer maps them to status codes.
package service

import "errors"

var (
	ErrValidation   = errors.New("validation")   // 400
	ErrUnauthorized = errors.New("unauthorized") // 401
	ErrForbidden    = errors.New("forbidden")    // 403
	ErrNotFound     = errors.New("not found")    // 404
	ErrConflict     = errors.New("conflict")     // 409
)
