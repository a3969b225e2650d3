// Package validator provides small, declarative validation rules for the
// values entered into the aid dashboard forms: required text, length bounds,
// numeric bounds, e-mail/phone/national id shapes, free patterns, choice
// lists, passwords and dates.
//
// Every helper returns a Rule: a Check closure plus a ValidationError that
// carries an English fallback Message together with a TranslationKey and
// TranslationValues, so callers can render the failure through a message
// table in any language.
//
// Rules are evaluated either all at once with Apply, which aggregates every
// failure into ValidationErrors (an error), or in order with First, which
// stops at the first failing rule:
//
//	if verr, failed := validator.First(
//	    validator.MinLen("name", name, 2),
//	    validator.ValidPhone("phone", phone),
//	); failed {
//	    // render verr.TranslationKey with verr.TranslationValues
//	}
//
// The package is stateless and safe for concurrent use. Lengths are counted
// in characters (runes), not bytes, so Arabic and Latin input behave alike.
package validator
