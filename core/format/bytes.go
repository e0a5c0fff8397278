package format

// BytesOptions is empty; raw bytes need no configuration.
type BytesOptions struct{}

// Bytes passes source bytes through unchanged.
type Bytes struct{}

// NewBytes returns the raw bytes format.
func NewBytes() Format[[]byte, BytesOptions] {
	return FromDecoder[[]byte, BytesOptions](Bytes{})
}

func (Bytes) Name() string {
	return "BYTES"
}

func (Bytes) Decode(data []byte, _ BytesOptions) ([]byte, error) {
	return data, nil
}
