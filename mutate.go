package jsonbuild

// putNode writes leaf at the location addressed by segs, creating missing
// intermediate containers along the way. The container kind of a created
// intermediate follows the same segment's append flag: array when flagged,
// object otherwise. Existing containers are never coerced to another kind.
func putNode(root *Node, segs []Segment, leaf *Node) {
	cur := root
	for _, seg := range segs[:len(segs)-1] {
		cur = descend(cur, seg)
	}

	last := segs[len(segs)-1]
	if !last.Append {
		cur.set(last.Name, leaf)
		return
	}

	arr := cur.Get(last.Name)
	if arr == nil || arr.Type != TypeArray {
		// First use, or a non-array leaf in the way: start a fresh array.
		arr = newArray()
		cur.set(last.Name, arr)
	}
	arr.push(leaf)
}

// descend resolves one intermediate segment under cur, materializing the
// container when absent. A scalar or null found where a container is needed
// is replaced by the container the segment implies; puts against deeper
// paths would otherwise be unsatisfiable.
func descend(cur *Node, seg Segment) *Node {
	child := cur.Get(seg.Name)
	if child == nil || !child.IsContainer() {
		if seg.Append {
			child = newArray()
		} else {
			child = newObject()
		}
		cur.set(seg.Name, child)
	}
	if child.Type != TypeArray {
		return child
	}
	// Descending through an array: reuse the last element when it is an
	// object, otherwise append a fresh one to walk into.
	if n := child.Len(); n > 0 {
		if elem := child.Index(n - 1); elem.Type == TypeObject {
			return elem
		}
	}
	elem := newObject()
	child.push(elem)
	return elem
}

// removeNode deletes the node addressed by segs from its parent container.
// A path that does not fully resolve reports ErrNotFound; callers decide
// whether that is worth surfacing.
func removeNode(root *Node, segs []Segment) error {
	if len(segs) == 0 {
		return ErrNotFound
	}
	cur := root
	for _, seg := range segs[:len(segs)-1] {
		child := cur.Get(seg.Name)
		if child == nil || child.Type != TypeObject {
			return ErrNotFound
		}
		cur = child
	}
	if !cur.del(segs[len(segs)-1].Name) {
		return ErrNotFound
	}
	return nil
}
