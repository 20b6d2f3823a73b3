// File: internal/store/errors.go
package store

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrEmptyUpdate    = errors.New("no fields to update")
	ErrDuplicatePhone = errors.New("phone already registered")
)
