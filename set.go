package jsonbuild

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// One-shot text API: apply a single builder-path mutation directly to a
// JSON document held as bytes, without constructing a Builder. The path
// grammar and value classification are the same as Put's; the document is
// never mutated in place, a new slice comes back.

// Set writes value at path in doc and returns the updated document. An
// empty doc starts from "{}". A "[*]" segment appends; with the marker on
// an intermediate segment, each call appends a fresh element.
func Set(doc []byte, path string, value any) ([]byte, error) {
	if len(doc) == 0 {
		doc = []byte(emptyJSON)
	}
	segs := normalizePath(path)
	if len(segs) == 0 {
		return doc, nil
	}
	sp := textPath(segs)
	switch classify(value) {
	case leafNull:
		return sjson.SetBytes(doc, sp, nil)
	case leafJSON:
		raw := value.(string)
		if !gjson.Valid(raw) {
			return nil, fmt.Errorf("embedded json: %w", ErrInvalidJSON)
		}
		return sjson.SetRawBytes(doc, sp, []byte(raw))
	case leafMap:
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncode, err)
		}
		return sjson.SetRawBytes(doc, sp, raw)
	}
	return sjson.SetBytes(doc, sp, value)
}

// Delete removes the entry at path and returns the updated document. An
// unresolved path leaves the document unchanged.
func Delete(doc []byte, path string) ([]byte, error) {
	if len(doc) == 0 {
		return []byte(emptyJSON), nil
	}
	segs := normalizePath(path)
	if len(segs) == 0 {
		return doc, nil
	}
	names := make([]string, 0, len(segs))
	for _, seg := range segs {
		names = append(names, escapeKey(seg.Name))
	}
	return sjson.DeleteBytes(doc, strings.Join(names, "."))
}

// textPath renders normalized segments as an sjson path. The append marker
// maps to sjson's "-1" key, which appends to the array at that location.
func textPath(segs []Segment) string {
	var b strings.Builder
	for i, seg := range segs {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(escapeKey(seg.Name))
		if seg.Append {
			b.WriteString(".-1")
		}
	}
	return b.String()
}

// escapeKey backslash-escapes characters that sjson paths treat as syntax,
// so keys are always addressed literally. Dots cannot occur here (the
// normalizer already split on them) but are covered for safety.
func escapeKey(key string) string {
	if !strings.ContainsAny(key, `.*?|\`) {
		return key
	}
	var b strings.Builder
	b.Grow(len(key) * 2)
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '|', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(key[i])
	}
	return b.String()
}
