package services

import "errors"

// Error kinds routed to the user. Bound methods match on these with
// errors.Is to decide how a failed action is reported; wrapped causes carry
// the detail.
var (
	ErrStorageUnavailable = errors.New("settings storage unavailable")
	ErrValidation         = errors.New("validation failed")
	ErrPathNotFound       = errors.New("path not found")
	ErrPermissionDenied   = errors.New("permission denied")
)
