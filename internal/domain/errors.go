package domain

import "errors"

var (
	ErrProviderUnavailable = errors.New("results provider unavailable")
	ErrMappingFailed       = errors.New("result mapping failed")
	ErrDateParse           = errors.New("unparsable start time")
	ErrInvalidScore        = errors.New("invalid score")
	ErrStoreUnavailable    = errors.New("result store unavailable")
	ErrNotFound            = errors.New("not found")
)
