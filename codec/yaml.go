package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"object-mapper/jsonval"
)

// ParseYAML parses a YAML document into a Value tree. Documents using
// constructs the tree cannot hold (non-string keys, timestamps, binary
// nodes) are rejected as malformed.
func ParseYAML(text string) (jsonval.Value, error) {
	var data any
	if err := yaml.Unmarshal([]byte(text), &data); err != nil {
		return jsonval.Value{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	v, ok := jsonval.FromGo(data)
	if !ok {
		return jsonval.Value{}, fmt.Errorf("%w: unsupported YAML content", ErrMalformed)
	}

	return v, nil
}

// PrintYAML serializes a Value tree as a YAML document.
func PrintYAML(v jsonval.Value) (string, error) {
	if !v.IsValid() {
		return "", fmt.Errorf("%w: no value", ErrUnprintable)
	}

	data, err := yaml.Marshal(v.Interface())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnprintable, err)
	}

	return string(data), nil
}
