package locale

import "errors"

var (
	// ErrParseCatalog wraps syntax errors from the YAML/JSON loaders.
	ErrParseCatalog = errors.New("failed to parse message catalog")

	// ErrEmptyCatalog is returned when a loaded document contains no
	// languages.
	ErrEmptyCatalog = errors.New("no languages found in message catalog")

	// ErrEmptyLanguage is returned when a loaded document uses an empty
	// language code.
	ErrEmptyLanguage = errors.New("empty language code in message catalog")
)
