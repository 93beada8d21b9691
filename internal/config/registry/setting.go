// Package registry defines every option the settings controller understands.
//
// Each Setting records the option's dot-separated path, raw value type,
// default, and for selectors the closed list of allowed names. Options
// files, environment variables and UI edits are all validated here before
// they reach the typed option state.
package registry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Registry errors.
var (
	// ErrUnknownSetting indicates the path is not registered.
	ErrUnknownSetting = errors.New("unknown option")

	// ErrTypeMismatch indicates the raw value has the wrong Go type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidEnum indicates a selector name outside the allowed set.
	ErrInvalidEnum = errors.New("invalid selector value")

	// ErrInvalidIndex indicates a selector position outside the allowed set.
	ErrInvalidIndex = errors.New("invalid selector index")

	// ErrOutOfRange indicates an integer below the setting's minimum.
	ErrOutOfRange = errors.New("value out of range")

	// ErrSettingAlreadyRegistered is returned when attempting to register a duplicate setting.
	ErrSettingAlreadyRegistered = errors.New("setting already registered")
)

// Setting defines an option with its metadata.
type Setting struct {
	// Path is the dot-separated path (e.g., "bounds.min").
	Path string

	// Type is the raw value type.
	Type SettingType

	// Default is the value used when nothing else sets the option.
	Default any

	// Description is human-readable documentation.
	Description string

	// Enum lists the allowed names of a selector, in selector order.
	Enum []string

	// Minimum for integer options (nil means no minimum).
	Minimum *int
}

// Validate checks if a raw value is acceptable for this setting.
// Selectors accept either a name from Enum or its position.
func (s *Setting) Validate(value any) error {
	switch s.Type {
	case TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%w: expected string, got %T", ErrTypeMismatch, value)
		}
	case TypeBool:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%w: expected boolean, got %T", ErrTypeMismatch, value)
		}
	case TypeInt:
		n, ok := AsInt(value)
		if !ok {
			return fmt.Errorf("%w: expected integer, got %T", ErrTypeMismatch, value)
		}
		if s.Minimum != nil && n < *s.Minimum {
			return fmt.Errorf("%w: %d is less than minimum %d", ErrOutOfRange, n, *s.Minimum)
		}
	case TypeEnum:
		_, err := s.EnumIndex(value)
		return err
	}
	return nil
}

// EnumIndex resolves a selector value, given as a name or a position, to
// its position in Enum.
func (s *Setting) EnumIndex(value any) (int, error) {
	if name, ok := value.(string); ok {
		n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
		for i, candidate := range s.Enum {
			if candidate == n {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: %q, must be one of %v", ErrInvalidEnum, name, s.Enum)
	}
	i, ok := AsInt(value)
	if !ok {
		return 0, fmt.Errorf("%w: expected selector name or index, got %T", ErrTypeMismatch, value)
	}
	if i < 0 || i >= len(s.Enum) {
		return 0, fmt.Errorf("%w: %d, must be in [0, %d)", ErrInvalidIndex, i, len(s.Enum))
	}
	return i, nil
}

// Coerce converts text from an environment variable into the setting's raw
// value type. Selector text that is a number is taken as an index.
func (s *Setting) Coerce(text string) (any, error) {
	switch s.Type {
	case TypeBool:
		switch strings.ToLower(strings.TrimSpace(text)) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
		return nil, fmt.Errorf("%w: %q is not a boolean", ErrTypeMismatch, text)
	case TypeInt:
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrTypeMismatch, text)
		}
		return n, nil
	case TypeEnum:
		if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			return n, nil
		}
		return text, nil
	default:
		return text, nil
	}
}

// AsInt converts the integer kinds produced by decoders (int from YAML,
// int64 from TOML) to int.
func AsInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	default:
		return 0, false
	}
}

// SettingType represents the raw value type of a setting.
type SettingType uint8

const (
	// TypeString represents free text, including numbers typed into fields.
	TypeString SettingType = iota
	// TypeInt represents an integer value.
	TypeInt
	// TypeBool represents a checkbox.
	TypeBool
	// TypeEnum represents a selector with a fixed set of entries.
	TypeEnum
)

// String returns the string representation of the type.
func (t SettingType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "integer"
	case TypeBool:
		return "boolean"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// MinValue creates a pointer to an int for use as Minimum.
func MinValue(v int) *int {
	return &v
}
