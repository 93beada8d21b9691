package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func decodeYAML(source string, data []byte) (map[string]any, error) {
	var options map[string]any
	if err := yaml.Unmarshal(data, &options); err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	normalized, err := normalizeYAML(options)
	if err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return normalized, nil
}

// normalizeYAML rewrites nested maps with non-string keys
// (map[any]any) into map[string]any.
func normalizeYAML(m map[string]any) (map[string]any, error) {
	for key, val := range m {
		switch v := val.(type) {
		case map[string]any:
			n, err := normalizeYAML(v)
			if err != nil {
				return nil, err
			}
			m[key] = n
		case map[any]any:
			converted := make(map[string]any, len(v))
			for k, inner := range v {
				s, ok := k.(string)
				if !ok {
					return nil, fmt.Errorf("key %v in section %q is not a string", k, key)
				}
				converted[s] = inner
			}
			n, err := normalizeYAML(converted)
			if err != nil {
				return nil, err
			}
			m[key] = n
		}
	}
	return m, nil
}
