package domain

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrStoreUnavailable = errors.New("store unavailable")
)
