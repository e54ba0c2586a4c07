package repository

import "errors"

var (
	// ErrNotFound is returned when a dataset source doesn't exist
	ErrNotFound = errors.New("not found")
)
