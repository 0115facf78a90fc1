package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("resource not found")
	ErrProviderUnavailable = errors.New("data provider unavailable")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrMalformedItem       = errors.New("malformed provider item")
)
