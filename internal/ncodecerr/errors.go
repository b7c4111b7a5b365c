// Package ncodecerr defines the two user-visible error kinds the codecs
// surface: ConfigError (bad MIME configuration) and DecodeError (malformed
// wire buffer). Both wrap a sentinel so callers can classify with errors.Is
// without depending on string matching, matching the teacher's
// sentinel-plus-wrap convention (internal/server/errors.go in the teacher
// repo).
package ncodecerr

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is classification.
var (
	ErrConfig = errors.New("ncodec: config")
	ErrDecode = errors.New("ncodec: decode")
)

// ConfigError reports invalid or incomplete MIME configuration.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return fmt.Sprintf("ncodec: config: %s", e.Msg) }
func (e *ConfigError) Unwrap() error { return ErrConfig }

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// DecodeError reports a malformed wire buffer encountered during Read.
type DecodeError struct {
	Msg string
}

func (e *DecodeError) Error() string { return fmt.Sprintf("ncodec: decode: %s", e.Msg) }
func (e *DecodeError) Unwrap() error { return ErrDecode }

// NewDecodeError builds a DecodeError with a formatted message.
func NewDecodeError(format string, args ...any) *DecodeError {
	return &DecodeError{Msg: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool { return errors.Is(err, ErrConfig) }

// IsDecodeError reports whether err is (or wraps) a DecodeError.
func IsDecodeError(err error) bool { return errors.Is(err, ErrDecode) }
