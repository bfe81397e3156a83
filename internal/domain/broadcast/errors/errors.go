package errors

import "errors"

var (
	ErrDatabaseOperation = errors.New("database operation failed")
)
