package i18n_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t4thdd/aid-efrh/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"hello": "Hello",
			"validation": map[string]any{
				"required":   "This field is required",
				"min_length": "Must be at least %{min} characters",
				"dependency": "Fill in %{dependency} first",
			},
		},
		"ar": {
			"validation": map[string]any{
				"required": "هذا الحقل مطلوب",
			},
		},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Run("rejects nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("rejects empty language code", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
			Data: map[string]map[string]any{"": {"a": "b"}},
		})
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalogue)
	})

	t.Run("lists languages sorted", func(t *testing.T) {
		tr := newTestTranslator(t)
		assert.Equal(t, []string{"ar", "en"}, tr.SupportedLanguages())
		assert.Equal(t, i18n.DefaultLanguage, tr.DefaultLang())
	})
}

func TestTranslator_T(t *testing.T) {
	tr := newTestTranslator(t)

	t.Run("resolves nested keys", func(t *testing.T) {
		assert.Equal(t, "This field is required", tr.T("en", "validation.required"))
		assert.Equal(t, "هذا الحقل مطلوب", tr.T("ar", "validation.required"))
		assert.Equal(t, "Hello", tr.T("en", "hello"))
	})

	t.Run("substitutes named parameters", func(t *testing.T) {
		assert.Equal(t, "Must be at least 3 characters", tr.T("en", "validation.min_length", "min", "3"))
		assert.Equal(t, "Fill in password first", tr.T("en", "validation.dependency", "dependency", "password"))
	})

	t.Run("keeps unknown placeholders", func(t *testing.T) {
		assert.Equal(t, "Must be at least %{min} characters", tr.T("en", "validation.min_length", "max", "3"))
	})

	t.Run("unknown language falls back to default", func(t *testing.T) {
		assert.Equal(t, "This field is required", tr.T("fr", "validation.required"))
	})

	t.Run("missing key falls back to key", func(t *testing.T) {
		assert.Equal(t, "validation.unknown", tr.T("en", "validation.unknown"))
		assert.Equal(t, "validation", tr.T("en", "validation"))
	})

	t.Run("missing key returns empty without fallback", func(t *testing.T) {
		strict := newTestTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, strict.T("ar", "validation.min_length"))
	})
}

func TestTranslator_HasTranslation(t *testing.T) {
	tr := newTestTranslator(t, i18n.WithDefaultLanguage("ar"))
	assert.True(t, tr.HasTranslation("en", "validation.min_length"))
	assert.False(t, tr.HasTranslation("ar", "validation.min_length"))
	assert.False(t, tr.HasTranslation("en", "validation"))
	assert.False(t, tr.HasTranslation("de", "hello"))
	assert.Equal(t, "ar", tr.DefaultLang())
}

func TestTranslator_MissingLogging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	tr := newTestTranslator(t, i18n.WithLogger(log), i18n.WithMissingTranslationsLogging(true))

	tr.T("en", "nope")
	assert.Contains(t, buf.String(), "translation not found")

	buf.Reset()
	quiet := newTestTranslator(t, i18n.WithLogger(log), i18n.WithNoLogging())
	quiet.T("en", "nope")
	assert.Empty(t, buf.String())
}
