package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrAnalysisNotFound = errors.New("body analysis doesn't exist")
	ErrValidation       = errors.New("validation failed")
	// Returned by the API client for any 404 response.
	ErrNotFound = errors.New("resource not found")
)
