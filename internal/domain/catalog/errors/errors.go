package errors

import "errors"

var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrCodeTaken          = errors.New("movie code already in use")
	ErrCodeSpaceExhausted = errors.New("could not allocate a unique code")
	ErrDatabaseOperation  = errors.New("database operation failed")
)
