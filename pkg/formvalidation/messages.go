package formvalidation

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/t4thdd/aid-efrh/pkg/i18n"
	"github.com/t4thdd/aid-efrh/pkg/validator"
)

// DefaultLanguage matches the language of the dashboard UI.
const DefaultLanguage = "ar"

//go:embed messages/*.yaml
var catalogueFS embed.FS

// NewCatalogue loads the bundled validation messages, layering any override
// adapters on top of them.
func NewCatalogue(ctx context.Context, overrides ...i18n.TranslationAdapter) (*i18n.Translator, error) {
	chain := append(i18n.ChainAdapter{i18n.NewFSAdapter(catalogueFS, "messages")}, overrides...)
	return i18n.NewTranslator(ctx, chain,
		i18n.WithDefaultLanguage(DefaultLanguage),
		i18n.WithFallbackToKey(false),
	)
}

// bundledCatalogue panics when the embedded files do not load; that is a
// build defect, not a runtime condition.
var bundledCatalogue = sync.OnceValue(func() *i18n.Translator {
	tr, err := NewCatalogue(context.Background())
	if err != nil {
		panic(fmt.Errorf("formvalidation: loading bundled messages: %w", err))
	}
	return tr
})

// Messages renders validation errors in one language.
type Messages struct {
	tr   *i18n.Translator
	lang string
}

// NewMessages renders through tr in lang. A nil tr uses the bundled catalogue.
func NewMessages(tr *i18n.Translator, lang string) Messages {
	if tr == nil {
		tr = bundledCatalogue()
	}
	if lang == "" {
		lang = DefaultLanguage
	}
	return Messages{tr: tr, lang: lang}
}

// DefaultMessages renders the bundled catalogue in lang.
func DefaultMessages(lang string) Messages {
	return NewMessages(nil, lang)
}

// Lang returns the rendering language.
func (m Messages) Lang() string {
	return m.lang
}

// Render translates verr. The English fallback message is used when the
// catalogue has no entry for the key.
func (m Messages) Render(verr validator.ValidationError) string {
	if m.tr == nil || verr.TranslationKey == "" {
		return verr.Message
	}

	keys := make([]string, 0, len(verr.TranslationValues))
	for k := range verr.TranslationValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		args = append(args, k, formatArg(verr.TranslationValues[k]))
	}

	msg := m.tr.T(m.lang, verr.TranslationKey, args...)
	if msg == "" || msg == verr.TranslationKey {
		return verr.Message
	}
	return msg
}

// formatArg renders floats in plain decimal notation so large bounds do not
// print as 1e+06.
func formatArg(v any) string {
	switch f := v.(type) {
	case float64:
		return strconv.FormatFloat(f, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(f), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// Text translates a bare key, returning fallback when it is missing.
func (m Messages) Text(key, fallback string, args ...string) string {
	return m.Render(validator.ValidationError{
		Message:           fallback,
		TranslationKey:    key,
		TranslationValues: pairs(args),
	})
}

func pairs(args []string) map[string]any {
	if len(args) < 2 {
		return nil
	}
	out := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		out[args[i]] = args[i+1]
	}
	return out
}
