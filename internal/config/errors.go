package config

import (
	"errors"
	"fmt"

	"github.com/dshills/calcsettings/internal/config/loader"
	"github.com/dshills/calcsettings/internal/config/registry"
)

// Errors returned by option operations. They alias the registry's
// sentinels so errors.Is works across packages.
var (
	// ErrUnknownOption indicates the option path doesn't exist.
	ErrUnknownOption = registry.ErrUnknownSetting

	// ErrTypeMismatch indicates the raw value type doesn't match the option.
	ErrTypeMismatch = registry.ErrTypeMismatch

	// ErrInvalidIndex indicates a selector position outside its entries.
	ErrInvalidIndex = registry.ErrInvalidIndex

	// ErrInvalidEnum indicates a selector name outside its entries.
	ErrInvalidEnum = registry.ErrInvalidEnum

	// ErrOutOfRange indicates an integer option below its minimum.
	ErrOutOfRange = registry.ErrOutOfRange
)

// ParseError represents an error while parsing an options or .env file.
type ParseError = loader.ParseError

// ValidationError describes a raw value rejected for an option.
type ValidationError struct {
	// Path is the option path that failed validation.
	Path string
	// Value is the rejected raw value.
	Value any
	// Code categorizes the validation error.
	Code ValidationErrorCode
	// Err is the underlying sentinel.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v (value: %v)", e.Path, e.Err, e.Value)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrorCode categorizes validation errors.
type ValidationErrorCode uint8

const (
	// ErrCodeUnknownOption indicates an unrecognized option path.
	ErrCodeUnknownOption ValidationErrorCode = iota
	// ErrCodeTypeMismatch indicates the value type is wrong.
	ErrCodeTypeMismatch
	// ErrCodeInvalidSelector indicates a selector name or index outside its entries.
	ErrCodeInvalidSelector
	// ErrCodeOutOfRange indicates an integer is out of range.
	ErrCodeOutOfRange
)

// String returns a human-readable name for the error code.
func (c ValidationErrorCode) String() string {
	switch c {
	case ErrCodeUnknownOption:
		return "unknown_option"
	case ErrCodeTypeMismatch:
		return "type_mismatch"
	case ErrCodeInvalidSelector:
		return "invalid_selector"
	case ErrCodeOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

func newValidationError(path string, value any, err error) *ValidationError {
	code := ErrCodeTypeMismatch
	switch {
	case errors.Is(err, ErrUnknownOption):
		code = ErrCodeUnknownOption
	case errors.Is(err, ErrInvalidIndex), errors.Is(err, ErrInvalidEnum):
		code = ErrCodeInvalidSelector
	case errors.Is(err, ErrOutOfRange):
		code = ErrCodeOutOfRange
	}
	return &ValidationError{Path: path, Value: value, Code: code, Err: err}
}
