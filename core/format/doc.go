// Package format turns raw bytes from a source into typed asset data.
//
// A Format names itself and imports an asset given its name, the source to read
// from, format-specific options and whether the caller wants reload information.
// Most formats only need to decode a byte slice; they implement Decoder and are
// lifted into a Format with FromDecoder, which reads the bytes, records the
// modification stamp and builds a SingleFile reload record on request.
//
// # Formats
//
//   - JSON: decodes with goccy/go-json.
//   - YAML: decodes with gopkg.in/yaml.v3.
//   - Bytes: passes the raw bytes through.
//
// # Errors
//
// Import failures reach asset storage wrapped in *Error, which names the format
// that produced them and unwraps to the underlying cause.
package format
