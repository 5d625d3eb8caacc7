package jsonbuild

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// FastCodec is an alternative codec backed by valyala/fastjson. Unlike the
// default codec it reformats number literals on encode. A FastCodec reuses
// its parser and arena between calls and must not be shared across
// concurrent builders.
type FastCodec struct {
	parser fastjson.Parser
	arena  fastjson.Arena
}

// NewFastCodec returns a codec ready to plug into NewWithCodec.
func NewFastCodec() *FastCodec {
	return &FastCodec{}
}

func (c *FastCodec) Decode(data []byte) (*Node, error) {
	v, err := c.parser.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return fromValue(v)
}

func (c *FastCodec) Encode(n *Node) ([]byte, error) {
	c.arena.Reset()
	v, err := c.toValue(n)
	if err != nil {
		return nil, err
	}
	return v.MarshalTo(nil), nil
}

func (c *FastCodec) ToMap(n *Node) (map[string]any, error) {
	return nodeToMap(n)
}

func fromValue(v *fastjson.Value) (*Node, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return newNull(), nil
	case fastjson.TypeTrue:
		return newBool(true), nil
	case fastjson.TypeFalse:
		return newBool(false), nil
	case fastjson.TypeNumber:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return newNumber(f), nil
	case fastjson.TypeString:
		s, err := v.StringBytes()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return newString(string(s)), nil
	case fastjson.TypeArray:
		elems, err := v.Array()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		arr := newArray()
		for _, elem := range elems {
			child, cerr := fromValue(elem)
			if cerr != nil {
				return nil, cerr
			}
			arr.push(child)
		}
		return arr, nil
	}
	obj, err := v.Object()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	out := newObject()
	var convErr error
	obj.Visit(func(key []byte, value *fastjson.Value) {
		if convErr != nil {
			return
		}
		child, cerr := fromValue(value)
		if cerr != nil {
			convErr = cerr
			return
		}
		out.set(string(key), child)
	})
	if convErr != nil {
		return nil, convErr
	}
	return out, nil
}

func (c *FastCodec) toValue(n *Node) (*fastjson.Value, error) {
	switch n.Type {
	case TypeNull:
		return c.arena.NewNull(), nil
	case TypeBool:
		if n.Boolean {
			return c.arena.NewTrue(), nil
		}
		return c.arena.NewFalse(), nil
	case TypeNumber:
		return c.arena.NewNumberFloat64(n.Num), nil
	case TypeString:
		return c.arena.NewString(n.Str), nil
	case TypeArray:
		arr := c.arena.NewArray()
		for i, elem := range n.elems {
			item, err := c.toValue(elem)
			if err != nil {
				return nil, err
			}
			arr.SetArrayItem(i, item)
		}
		return arr, nil
	case TypeObject:
		obj := c.arena.NewObject()
		for _, key := range n.keys {
			field, err := c.toValue(n.fields[key])
			if err != nil {
				return nil, err
			}
			obj.Set(key, field)
		}
		return obj, nil
	}
	return nil, ErrEncode
}
