package jsonbuild

import (
	"encoding/json"
	"fmt"
	"strings"
)

// leafKind classifies a value supplied to put.
type leafKind uint8

const (
	leafLiteral leafKind = iota
	leafNull
	leafJSON // string carrying embedded JSON object text
	leafMap  // generic mapping, e.g. the output of BuildAsMap
)

// classify decides how a put value must be stored. The embedded-JSON check
// is a substring sniff for '{': a literal string that merely contains a
// brace is indistinguishable from intended JSON text and will be decoded.
// That matches the historical behavior; callers with brace-bearing literals
// should pre-encode them as JSON strings themselves.
func classify(value any) leafKind {
	if value == nil {
		return leafNull
	}
	switch v := value.(type) {
	case map[string]any:
		return leafMap
	case string:
		if strings.Contains(v, "{") {
			return leafJSON
		}
	}
	return leafLiteral
}

// leafNode converts a classified value into the node to be written at the
// path's leaf. Embedded JSON text and unrecognized Go values go through the
// codec so that the stored subtree is structured, never an opaque blob.
func leafNode(kind leafKind, value any, codec Codec) (*Node, error) {
	switch kind {
	case leafNull:
		return newNull(), nil
	case leafJSON:
		n, err := codec.Decode([]byte(value.(string)))
		if err != nil {
			return nil, fmt.Errorf("embedded json: %w", err)
		}
		return n, nil
	case leafMap:
		return mapNode(value.(map[string]any), codec)
	}
	return literalNode(value, codec)
}

// mapNode re-encodes a generic mapping as an object subtree so later
// path-based mutation can reach into it.
func mapNode(m map[string]any, codec Codec) (*Node, error) {
	obj := newObject()
	for k, v := range m {
		child, err := anyNode(v, codec)
		if err != nil {
			return nil, err
		}
		obj.set(k, child)
	}
	return obj, nil
}

func anyNode(value any, codec Codec) (*Node, error) {
	if value == nil {
		return newNull(), nil
	}
	switch v := value.(type) {
	case map[string]any:
		return mapNode(v, codec)
	case []any:
		arr := newArray()
		for _, e := range v {
			child, err := anyNode(e, codec)
			if err != nil {
				return nil, err
			}
			arr.push(child)
		}
		return arr, nil
	}
	return literalNode(value, codec)
}

// literalNode stores a scalar as given. Values outside the common scalar
// types fall back to a JSON round trip through the codec.
func literalNode(value any, codec Codec) (*Node, error) {
	switch v := value.(type) {
	case string:
		return newString(v), nil
	case bool:
		return newBool(v), nil
	case float64:
		return newNumber(v), nil
	case float32:
		return newNumber(float64(v)), nil
	case int:
		return newNumber(float64(v)), nil
	case int8:
		return newNumber(float64(v)), nil
	case int16:
		return newNumber(float64(v)), nil
	case int32:
		return newNumber(float64(v)), nil
	case int64:
		return newNumber(float64(v)), nil
	case uint:
		return newNumber(float64(v)), nil
	case uint8:
		return newNumber(float64(v)), nil
	case uint16:
		return newNumber(float64(v)), nil
	case uint32:
		return newNumber(float64(v)), nil
	case uint64:
		return newNumber(float64(v)), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return &Node{Type: TypeNumber, Num: f, Raw: v.String()}, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return codec.Decode(raw)
}
