package formvalidation

import (
	"errors"
	"sort"

	"github.com/t4thdd/aid-efrh/pkg/validator"
)

// Status is a single styling token derived from a field's state.
type Status string

const (
	StatusNeutral Status = ""
	StatusInvalid Status = "invalid"
	StatusWarning Status = "warning"
	StatusValid   Status = "valid"
)

// FieldState is the display state of one field.
type FieldState struct {
	Error      string `json:"error,omitempty"`
	Warning    string `json:"warning,omitempty"`
	HasSuccess bool   `json:"hasSuccess"`
	Touched    bool   `json:"touched"`
	Status     Status `json:"status,omitempty"`
}

func statusOf(errMsg, warning string, success bool) Status {
	switch {
	case errMsg != "":
		return StatusInvalid
	case warning != "":
		return StatusWarning
	case success:
		return StatusValid
	default:
		return StatusNeutral
	}
}

// FormResult is the outcome of validating a whole form.
type FormResult struct {
	IsValid   bool              `json:"isValid"`
	Errors    map[string]string `json:"errors"`
	Warnings  map[string]string `json:"warnings"`
	Successes map[string]bool   `json:"successes"`
}

// Err returns the field errors as validator.ValidationErrors ordered by
// field name, joined with validator.ErrValidationFailed, or nil when the
// form is valid.
func (r FormResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}

	fields := make([]string, 0, len(r.Errors))
	for f := range r.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	errs := make(validator.ValidationErrors, 0, len(fields))
	for _, f := range fields {
		errs.Add(validator.ValidationError{Field: f, Message: r.Errors[f]})
	}
	return errors.Join(validator.ErrValidationFailed, errs)
}
