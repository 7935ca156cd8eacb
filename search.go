package microxml

// Constraint narrows a FindElement search. A dimension without a constraint
// is a wildcard, so passing no constraints matches every element. Using an
// option instead of an empty-string sentinel keeps "no constraint" distinct
// from "exact match on the empty string".
type Constraint func(*query)

type query struct {
	name, attr, value          string
	hasName, hasAttr, hasValue bool
}

// WithName matches elements with exactly this tag name.
func WithName(name string) Constraint {
	return func(q *query) {
		q.name = name
		q.hasName = true
	}
}

// WithAttr matches elements carrying an attribute with exactly this name.
func WithAttr(name string) Constraint {
	return func(q *query) {
		q.attr = name
		q.hasAttr = true
	}
}

// WithValue matches elements whose constrained attribute has exactly this
// value. It is only meaningful together with WithAttr; on its own the
// search matches nothing.
func WithValue(value string) Constraint {
	return func(q *query) {
		q.value = value
		q.hasValue = true
	}
}

func (q *query) match(node *Node) bool {
	if node.Kind != ElementKind || node.Name == "" {
		return false
	}

	if q.hasName && node.Name != q.name {
		return false
	}

	if !q.hasAttr {
		return true
	}

	value, ok := node.AttrValue(q.attr)
	if !ok {
		return false
	}

	return !q.hasValue || q.value == value
}

// FindElement returns the first element after node, in document order and
// within the subtree rooted at top, satisfying every constraint. The search
// starts strictly after node itself.
//
// The descend mode shapes the search scope: DescendAll walks the entire
// subtree, while DescendFirst and NoDescend only advance sibling by sibling
// after the first step, so DescendFirst visits the direct children of the
// starting node and NoDescend its following siblings. Use DescendFirst for
// the initial search and NoDescend to find further matches from a previous
// one.
func FindElement(node, top *Node, descend Descend, constraints ...Constraint) *Node {
	if node == nil || top == nil {
		return nil
	}

	q := &query{}
	for _, constraint := range constraints {
		constraint(q)
	}

	// a value constraint without an attribute to check it on can never match
	if q.hasValue && !q.hasAttr {
		return nil
	}

	node = WalkNext(node, top, descend)

	for node != nil {
		if q.match(node) {
			return node
		}

		// full descent keeps walking the whole subtree, otherwise only
		// siblings of the first candidate are considered
		if descend == DescendAll {
			node = WalkNext(node, top, DescendAll)
		} else {
			node = node.NextSibling
		}
	}

	return nil
}

// FindText returns the first text node after node, in document order and
// within the subtree rooted at top, whose payload equals text byte for
// byte. There is no wildcard form. The descend mode works as in
// FindElement.
func FindText(node, top *Node, text string, descend Descend) *Node {
	if node == nil || top == nil {
		return nil
	}

	node = WalkNext(node, top, descend)

	for node != nil {
		if node.Kind == TextKind && node.Data == text {
			return node
		}

		if descend == DescendAll {
			node = WalkNext(node, top, DescendAll)
		} else {
			node = node.NextSibling
		}
	}

	return nil
}
