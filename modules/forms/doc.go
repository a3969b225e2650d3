// Package forms holds the rule sets of the aid dashboard forms.
//
// A Catalogue binds the rule sets to one message language and one clock:
//
//	cat := forms.New(forms.WithMessages(formvalidation.DefaultMessages("en")))
//	rules, ok := cat.Lookup("beneficiary")
//	if !ok {
//		// unknown form
//	}
//	engine := formvalidation.New(rules, formvalidation.WithLanguage("en"))
//
// Custom checks (dates, choice lists, passwords) render their messages
// through the catalogue's Messages, so they follow the same language as the
// engine's built-in checks when both are configured alike.
package forms
