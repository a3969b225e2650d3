package validator

import "errors"

// ErrValidationFailed marks errors that carry field validation failures.
// Use ExtractValidationErrors to get the per-field details.
var ErrValidationFailed = errors.New("validation failed")
