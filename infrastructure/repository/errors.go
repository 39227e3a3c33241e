package repository

import "github.com/pkg/errors"

// ErrNotFound is returned by deletes that matched no owned row, so handlers
// can distinguish "not yours / gone" from a database failure.
var ErrNotFound = errors.New("record not found")
