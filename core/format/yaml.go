package format

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLOptions configures YAML decoding.
type YAMLOptions struct {
	// KnownFields rejects mapping keys that do not map to a struct field.
	KnownFields bool
}

// YAML decodes YAML documents into A.
type YAML[A any] struct{}

// NewYAML returns a YAML format for A.
func NewYAML[A any]() Format[A, YAMLOptions] {
	return FromDecoder[A, YAMLOptions](YAML[A]{})
}

func (YAML[A]) Name() string {
	return "YAML"
}

func (YAML[A]) Decode(data []byte, options YAMLOptions) (A, error) {
	var out A
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(options.KnownFields)
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return out, err
	}
	return out, nil
}
