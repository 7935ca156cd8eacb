package microxml

// Descend controls whether a walk step may move into a node's children or
// is restricted to sibling-level advancement.
//
// Within a single step DescendFirst behaves like DescendAll; the difference
// only matters to the find functions, which descend on their first step and
// then advance sibling by sibling.
type Descend int

const (
	NoDescend Descend = iota
	DescendFirst
	DescendAll
)

// WalkNext returns the node following node in document order, without ever
// leaving the subtree rooted at top. It returns nil once the subtree is
// exhausted (or if node is nil).
//
// Document order is parent before children, children left to right, a whole
// subtree before the next sibling's subtree.
func WalkNext(node, top *Node, descend Descend) *Node {
	if node == nil {
		return nil
	}

	if descend != NoDescend && node.FirstChild != nil {
		return node.FirstChild
	}

	// top is a closed bound: a walk may descend into it, but never past it
	// sideways or upward
	if node == top {
		return nil
	}

	if node.NextSibling != nil {
		return node.NextSibling
	}

	// ascend until an ancestor has a next sibling, an explicit loop so the
	// stack stays flat however deep the document is
	for node.Parent != nil && node.Parent != top {
		node = node.Parent

		if node.NextSibling != nil {
			return node.NextSibling
		}
	}

	return nil
}

// WalkPrev returns the node preceding node in document order, the exact
// inverse of WalkNext over the same top and descend mode. It returns nil at
// the subtree's first node (or if node is nil or top itself).
func WalkPrev(node, top *Node, descend Descend) *Node {
	if node == nil || node == top {
		return nil
	}

	if prev := node.PrevSibling; prev != nil {
		if descend != NoDescend && prev.LastChild != nil {
			// the previous node in document order is the deepest last
			// descendant of the previous sibling
			node = prev.LastChild
			for node.LastChild != nil {
				node = node.LastChild
			}

			return node
		}

		return prev
	}

	if node.Parent != top {
		return node.Parent
	}

	return nil
}
