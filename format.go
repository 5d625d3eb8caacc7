package jsonbuild

import "github.com/tidwall/pretty"

// Pretty reformats JSON text with two-space indentation.
func Pretty(data []byte) []byte {
	return pretty.Pretty(data)
}

// Compact strips all insignificant whitespace from JSON text.
func Compact(data []byte) []byte {
	return pretty.Ugly(data)
}
