package jsonbuild

import "strings"

// pathRoot is the optional root prefix of a path expression. Paths with and
// without it address the same location.
const pathRoot = "$."

// arrayMarker flags a segment as array-append: each put appends one element
// instead of overwriting a keyed value.
const arrayMarker = "[*]"

// Segment is one dot-separated component of a normalized path.
type Segment struct {
	Name   string
	Append bool
}

// normalizePath parses a path expression into ordered segments. The root
// prefix is stripped first, then the path is split on '.', and each token
// that carries the array marker has it stripped and the Append flag set.
// Segment order is preserved exactly as written.
//
// Callers are expected to supply well-formed paths; malformed input (empty
// tokens, stray brackets) is passed through rather than rejected.
func normalizePath(path string) []Segment {
	path = strings.TrimPrefix(path, pathRoot)
	if path == "" {
		return nil
	}
	tokens := strings.Split(path, ".")
	segs := make([]Segment, 0, len(tokens))
	for _, tok := range tokens {
		seg := Segment{Name: tok}
		if strings.Contains(tok, arrayMarker) {
			seg.Name = strings.Replace(tok, arrayMarker, "", 1)
			seg.Append = true
		}
		segs = append(segs, seg)
	}
	return segs
}
