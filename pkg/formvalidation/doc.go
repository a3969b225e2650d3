// Package formvalidation validates dashboard form input against declarative
// per-field rules and tracks the resulting display state.
//
// A RuleSet maps field names to Rule values. ValidateField checks one value
// with no side effects, running these steps in order and stopping at the
// first that reports something:
//
//  1. required: a blank value (nil or whitespace-only string) is an error
//  2. a blank optional value always passes
//  3. string shape: MinLength, MaxLength, Email, Phone, NationalID, Pattern
//  4. numeric bounds: Min, Max, for numbers and numeric strings
//  5. Custom, which sees the whole form Snapshot
//  6. Dependencies: a blank dependency yields a warning, not an error
//
// An Engine keeps the state of one form instance:
//
//	e := formvalidation.New(rules, formvalidation.WithLanguage("en"))
//	defer e.Close()
//
//	e.ValidateFieldOnChange("phone", "05912", form) // debounced
//	e.ValidateFieldOnBlur("phone", "0591234567", form)
//	st := e.FieldState("phone") // Error, Warning, HasSuccess, Touched, Status
//
//	if res := e.ValidateForm(form); !res.IsValid {
//	    return res.Err()
//	}
//
// On-change validations are debounced per field with last-write-wins
// semantics: a newer request cancels the pending one, and a result that is
// no longer current is never applied. IsFormValid is a lenient signal for
// display (untouched required fields do not count against it); ValidateForm
// is the strict check to gate submission.
//
// Messages come from an i18n catalogue bundled with the package (Arabic by
// default, English also available) and can be overridden with WithCatalogue.
package formvalidation
