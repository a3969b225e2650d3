package i18n

import "errors"

var (
	ErrNilAdapter = errors.New("translation adapter is nil")

	// Parsing
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrInvalidCatalogue     = errors.New("invalid translation catalogue")

	// Files
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrUnsupportedFile      = errors.New("unsupported translation file extension")
	ErrEmptyFile            = errors.New("translation file is empty")
	ErrNoTranslationFiles   = errors.New("no translation files found")
)
