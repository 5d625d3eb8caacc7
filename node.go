package jsonbuild

// ValueType represents the type of a document node.
type ValueType uint8

const (
	TypeNull ValueType = iota
	TypeString
	TypeNumber
	TypeBool
	TypeObject
	TypeArray
)

// String returns the type name.
func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeString:
		return "String"
	case TypeNumber:
		return "Number"
	case TypeBool:
		return "Bool"
	case TypeObject:
		return "Object"
	case TypeArray:
		return "Array"
	}
	return "<unknown>"
}

// Node is one value in a document tree. The payload field that matters
// depends on Type: Str for strings, Num (and Raw, when the node was decoded
// from text) for numbers, Boolean for bools. Objects keep their fields in
// insertion order; arrays are append-only through the mutation engine.
type Node struct {
	Type    ValueType
	Str     string
	Num     float64
	Raw     string // original number literal, empty when built from a Go value
	Boolean bool

	keys   []string
	fields map[string]*Node
	elems  []*Node
}

func newObject() *Node {
	return &Node{Type: TypeObject, fields: map[string]*Node{}}
}

func newArray() *Node {
	return &Node{Type: TypeArray}
}

func newNull() *Node {
	return &Node{Type: TypeNull}
}

func newString(s string) *Node {
	return &Node{Type: TypeString, Str: s}
}

func newNumber(f float64) *Node {
	return &Node{Type: TypeNumber, Num: f}
}

func newBool(b bool) *Node {
	return &Node{Type: TypeBool, Boolean: b}
}

// IsContainer reports whether the node is an object or an array.
func (n *Node) IsContainer() bool {
	return n.Type == TypeObject || n.Type == TypeArray
}

// Len returns the number of fields of an object or elements of an array,
// and 0 for any other type.
func (n *Node) Len() int {
	switch n.Type {
	case TypeObject:
		return len(n.keys)
	case TypeArray:
		return len(n.elems)
	}
	return 0
}

// Keys returns an object's field names in insertion order, nil otherwise.
func (n *Node) Keys() []string {
	if n.Type != TypeObject {
		return nil
	}
	return n.keys
}

// Get returns the field named key of an object node, or nil when the node
// is not an object or has no such field.
func (n *Node) Get(key string) *Node {
	if n.Type != TypeObject {
		return nil
	}
	return n.fields[key]
}

// Index returns element i of an array node, or nil when out of range or
// the node is not an array.
func (n *Node) Index(i int) *Node {
	if n.Type != TypeArray || i < 0 || i >= len(n.elems) {
		return nil
	}
	return n.elems[i]
}

// set writes a field on an object node, last write wins. Insertion order
// is kept for keys seen for the first time.
func (n *Node) set(key string, child *Node) {
	if n.fields == nil {
		n.fields = map[string]*Node{}
	}
	if _, exists := n.fields[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = child
}

// del removes a field from an object node and reports whether it existed.
func (n *Node) del(key string) bool {
	if n.Type != TypeObject {
		return false
	}
	if _, exists := n.fields[key]; !exists {
		return false
	}
	delete(n.fields, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
	return true
}

// push appends one element to an array node.
func (n *Node) push(child *Node) {
	n.elems = append(n.elems, child)
}
