package jsonbuild

import (
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

// Codec converts between document trees, JSON text, and generic mappings.
// A codec must be a pure function of its input; the mutation engine never
// depends on which codec is plugged in.
type Codec interface {
	Decode(data []byte) (*Node, error)
	Encode(n *Node) ([]byte, error)
	ToMap(n *Node) (map[string]any, error)
}

// defaultCodec serves every builder that was not given its own codec.
var defaultCodec Codec = gjsonCodec{}

// gjsonCodec is the default codec, decoding through gjson's parser and
// encoding with a compact writer.
type gjsonCodec struct{}

func (gjsonCodec) Decode(data []byte) (*Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

func (gjsonCodec) Encode(n *Node) ([]byte, error) {
	return appendNode(make([]byte, 0, 256), n), nil
}

func (gjsonCodec) ToMap(n *Node) (map[string]any, error) {
	return nodeToMap(n)
}

// fromResult converts a parsed gjson value into a node. ForEach preserves
// the document order of object members.
func fromResult(r gjson.Result) *Node {
	switch r.Type {
	case gjson.Null:
		return newNull()
	case gjson.False:
		return newBool(false)
	case gjson.True:
		return newBool(true)
	case gjson.Number:
		return &Node{Type: TypeNumber, Num: r.Num, Raw: r.Raw}
	case gjson.String:
		return newString(r.Str)
	}
	if r.IsArray() {
		arr := newArray()
		r.ForEach(func(_, value gjson.Result) bool {
			arr.push(fromResult(value))
			return true
		})
		return arr
	}
	obj := newObject()
	r.ForEach(func(key, value gjson.Result) bool {
		obj.set(key.String(), fromResult(value))
		return true
	})
	return obj
}

//------------------------------------------------------------------------------
// COMPACT ENCODER
//------------------------------------------------------------------------------

func appendNode(dst []byte, n *Node) []byte {
	switch n.Type {
	case TypeNull:
		return append(dst, "null"...)
	case TypeBool:
		if n.Boolean {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case TypeNumber:
		return appendNumber(dst, n)
	case TypeString:
		return appendString(dst, n.Str)
	case TypeArray:
		dst = append(dst, '[')
		for i, elem := range n.elems {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendNode(dst, elem)
		}
		return append(dst, ']')
	}
	dst = append(dst, '{')
	for i, key := range n.keys {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendString(dst, key)
		dst = append(dst, ':')
		dst = appendNode(dst, n.fields[key])
	}
	return append(dst, '}')
}

// appendNumber prefers the decoded literal so numbers round-trip without
// reformatting. Non-finite values have no JSON form and degrade to null.
func appendNumber(dst []byte, n *Node) []byte {
	if n.Raw != "" {
		return append(dst, n.Raw...)
	}
	if math.IsNaN(n.Num) || math.IsInf(n.Num, 0) {
		return append(dst, "null"...)
	}
	if n.Num == math.Trunc(n.Num) && math.Abs(n.Num) < 1e15 {
		return strconv.AppendInt(dst, int64(n.Num), 10)
	}
	return strconv.AppendFloat(dst, n.Num, 'g', -1, 64)
}

const hexDigits = "0123456789abcdef"

func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			dst = append(dst, '\\', '"')
		case c == '\\':
			dst = append(dst, '\\', '\\')
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c < 0x20:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}

//------------------------------------------------------------------------------
// GENERIC MAPPING CONVERSION
//------------------------------------------------------------------------------

// nodeToMap converts a document into a generic nested mapping of maps,
// slices, and scalars, the representation BuildAsMap hands back.
func nodeToMap(n *Node) (map[string]any, error) {
	if n.Type != TypeObject {
		return nil, ErrEncode
	}
	return nodeToAny(n).(map[string]any), nil
}

func nodeToAny(n *Node) any {
	switch n.Type {
	case TypeNull:
		return nil
	case TypeString:
		return n.Str
	case TypeNumber:
		return n.Num
	case TypeBool:
		return n.Boolean
	case TypeArray:
		out := make([]any, 0, len(n.elems))
		for _, elem := range n.elems {
			out = append(out, nodeToAny(elem))
		}
		return out
	}
	out := make(map[string]any, len(n.keys))
	for _, key := range n.keys {
		out[key] = nodeToAny(n.fields[key])
	}
	return out
}
