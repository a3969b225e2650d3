package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t4thdd/aid-efrh/pkg/i18n"
)

func TestFileAdapter(t *testing.T) {
	t.Run("loads YAML", func(t *testing.T) {
		translations, err := i18n.NewFileAdapter(filepath.Join("testdata", "en.yaml")).Load(context.Background())
		require.NoError(t, err)
		validation, ok := translations["en"]["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "This field is required", validation["required"])
	})

	t.Run("loads JSON", func(t *testing.T) {
		translations, err := i18n.NewFileAdapter(filepath.Join("testdata", "ar.json")).Load(context.Background())
		require.NoError(t, err)
		assert.Contains(t, translations, "ar")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := i18n.NewFileAdapter(filepath.Join("testdata", "missing.yaml")).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := i18n.NewFileAdapter("messages.txt").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrUnsupportedFile)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o600))
		_, err := i18n.NewFileAdapter(path).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrEmptyFile)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFileAdapter(filepath.Join("testdata", "en.yaml")).Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingFileCancelled)
	})
}

func TestFSAdapter(t *testing.T) {
	fsys := fstest.MapFS{
		"messages/en.yaml":   {Data: []byte("en:\n  a: A\n")},
		"messages/ar.json":   {Data: []byte(`{"ar": {"a": "أ"}}`)},
		"messages/README":    {Data: []byte("ignored")},
		"messages/sub/x.yml": {Data: []byte("en:\n  b: B\n")},
	}

	t.Run("merges supported files", func(t *testing.T) {
		translations, err := i18n.NewFSAdapter(fsys, "messages").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "A", translations["en"]["a"])
		assert.Equal(t, "أ", translations["ar"]["a"])
		assert.NotContains(t, translations["en"], "b")
	})

	t.Run("no catalogue files", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(fstest.MapFS{"d/readme.md": {Data: []byte("x")}}, "d").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("broken file", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(fstest.MapFS{"d/en.yaml": {Data: []byte("- just\n- a list\n")}}, "d").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})
}

func TestChainAdapter(t *testing.T) {
	base := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"validation": map[string]any{"required": "Required", "email": "Bad email"}},
	}}
	override := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"validation": map[string]any{"required": "Please fill this in"}},
		"fr": {"validation": map[string]any{"required": "Obligatoire"}},
	}}

	tr, err := i18n.NewTranslator(context.Background(), i18n.ChainAdapter{base, nil, override})
	require.NoError(t, err)

	assert.Equal(t, "Please fill this in", tr.T("en", "validation.required"))
	assert.Equal(t, "Bad email", tr.T("en", "validation.email"))
	assert.Equal(t, "Obligatoire", tr.T("fr", "validation.required"))
}

func TestNewParserForFile(t *testing.T) {
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("ar.json"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("ar.YML"))
	assert.Nil(t, i18n.NewParserForFile("ar.toml"))
	assert.True(t, i18n.NewYAMLParser().SupportsFileExtension(".yaml"))
	assert.False(t, i18n.NewJSONParser().SupportsFileExtension("yaml"))
}
