package config

import "errors"

var (
	// ErrUnknownFormat indicates a config path with an unsupported extension.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalidValue indicates a config value that failed validation.
	ErrInvalidValue = errors.New("config: invalid value")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return "parse error in " + e.Path + ": " + e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
