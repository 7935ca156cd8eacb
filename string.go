package microxml

// String extracts the concatenated text content of the subtree rooted at
// node, in document order.
func String(node *Node) (out string) {
	if node == nil {
		return ""
	}

	if node.Kind == TextKind {
		return node.Data
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		out += String(child)
	}

	return
}
