package errors

import "errors"

var (
	ErrAlreadyRated      = errors.New("movie already rated by this user")
	ErrMovieNotFound     = errors.New("rated movie no longer exists")
	ErrInvalidStars      = errors.New("stars must be between 1 and 5")
	ErrUserNotFound      = errors.New("user not found")
	ErrDatabaseOperation = errors.New("database operation failed")
)
