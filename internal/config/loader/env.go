package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvPrefix is the prefix of option environment variables.
const DefaultEnvPrefix = "CALC_"

// EnvLoader loads options from environment variables and an optional
// .env file. Process variables override .env entries.
//
// Values are returned as text; the option registry converts them to the
// option's type.
type EnvLoader struct {
	prefix     string            // Environment variable prefix (e.g., "CALC_")
	mapping    map[string]string // Env var -> option path
	fs         FileSystem
	dotEnvPath string
	environ    func() []string
}

// EnvOption configures an EnvLoader.
type EnvOption func(*EnvLoader)

// WithDotEnv reads path as a .env file before the process environment.
// A missing file is not an error.
func WithDotEnv(path string) EnvOption {
	return func(l *EnvLoader) {
		l.dotEnvPath = path
	}
}

// WithEnvFS sets the file system used to read the .env file.
func WithEnvFS(fsys FileSystem) EnvOption {
	return func(l *EnvLoader) {
		l.fs = fsys
	}
}

// WithMapping adds explicit variable to path mappings that bypass the
// naming convention.
func WithMapping(mapping map[string]string) EnvOption {
	return func(l *EnvLoader) {
		for env, path := range mapping {
			l.mapping[env] = path
		}
	}
}

// WithEnviron replaces os.Environ as the source of process variables.
func WithEnviron(environ func() []string) EnvOption {
	return func(l *EnvLoader) {
		l.environ = environ
	}
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "CALC_").
func NewEnvLoader(prefix string, opts ...EnvOption) *EnvLoader {
	l := &EnvLoader{
		prefix:  prefix,
		mapping: make(map[string]string),
		fs:      DefaultFS(),
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the .env file and the environment and returns a nested map
// of option paths to text values.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	vars := make(map[string]string)

	if l.dotEnvPath != "" {
		data, err := l.fs.ReadFile(l.dotEnvPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading %s: %w", l.dotEnvPath, err)
		default:
			parsed, err := godotenv.Parse(bytes.NewReader(data))
			if err != nil {
				return nil, &ParseError{Path: l.dotEnvPath, Message: err.Error(), Err: err}
			}
			for name, value := range parsed {
				vars[name] = value
			}
		}
	}

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		vars[name] = value
	}

	options := make(map[string]any)
	for name, value := range vars {
		if path, ok := l.mapping[name]; ok {
			setByPath(options, path, value)
			continue
		}
		if !strings.HasPrefix(name, l.prefix) || len(name) == len(l.prefix) {
			continue
		}
		setByPath(options, l.envToPath(name), value)
	}

	return options, nil
}

// envToPath converts CALC_BOUNDS_MIN_ENABLED to bounds.minEnabled.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)

	section, rest, ok := strings.Cut(name, "_")
	if !ok {
		return strings.ToLower(name)
	}

	parts := strings.Split(rest, "_")
	var b strings.Builder
	b.WriteString(strings.ToLower(section))
	b.WriteByte('.')
	b.WriteString(strings.ToLower(parts[0]))
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}
