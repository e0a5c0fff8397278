// Package utils provides small parsing helpers shared by the CLI and HTTP layers.
package utils
