package i18n

import "errors"

var (
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrLoadingTranslationsCancelled  = errors.New("loading translations cancelled")
	ErrFailedToReadEmbeddedDirectory = errors.New("failed to read embedded directory")
	ErrFailedToReadEmbeddedFile      = errors.New("failed to read embedded translation file")
	ErrFailedToParseEmbeddedFile     = errors.New("failed to parse embedded translation file")
)
