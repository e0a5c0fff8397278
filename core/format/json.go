package format

import (
	"bytes"

	"github.com/goccy/go-json"
)

// JSONOptions configures JSON decoding.
type JSONOptions struct {
	// DisallowUnknownFields rejects object keys that do not map to a struct field.
	DisallowUnknownFields bool
}

// JSON decodes JSON documents into A.
type JSON[A any] struct{}

// NewJSON returns a JSON format for A.
func NewJSON[A any]() Format[A, JSONOptions] {
	return FromDecoder[A, JSONOptions](JSON[A]{})
}

func (JSON[A]) Name() string {
	return "JSON"
}

func (JSON[A]) Decode(data []byte, options JSONOptions) (A, error) {
	var out A
	dec := json.NewDecoder(bytes.NewReader(data))
	if options.DisallowUnknownFields {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
