// Package i18n provides a small message catalogue used to render
// validation messages in the language of the dashboard user.
//
// A Translator is built from a TranslationAdapter:
//
//   - MapAdapter serves an in-memory map.
//   - FileAdapter reads one JSON or YAML file.
//   - FSAdapter reads every JSON/YAML file in a directory of an fs.FS,
//     typically an embed.FS bundled with the binary.
//   - ChainAdapter layers catalogues so deployments can override single
//     messages without copying the whole file.
//
// Catalogues are keyed by language code at the top level and may nest keys,
// which are addressed with dots:
//
//	ar:
//	  validation:
//	    min_length: "يجب أن يكون %{min} أحرف على الأقل"
//
//	msg := tr.T("ar", "validation.min_length", "min", "3")
//
// Unknown languages fall back to the default language; unknown keys return
// the key itself unless WithFallbackToKey(false) is set.
package i18n
