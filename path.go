package microxml

import "strings"

// maxSegment bounds the length of a single path segment. Longer segments
// fail the whole lookup instead of being truncated.
const maxSegment = 255

// FindPath resolves a slash-separated list of element names against the
// subtree rooted at top and returns the matching node, or nil if any
// segment fails to match.
//
// A "*/" prefix on a segment makes the following name match at any depth
// instead of among direct children only, so "a/b" finds a child "b" of a
// child "a" while "*/b" finds a "b" anywhere below top. Resolution commits
// to the first match of every segment and never backtracks.
//
// When the found element directly contains a value node as its first child,
// that child is returned instead of the element, so looking up a leaf like
// "config/port" yields the text holding the port rather than its wrapper.
func FindPath(top *Node, path string) *Node {
	if top == nil || path == "" {
		return nil
	}

	node := top
	for path != "" {
		descend := DescendFirst
		if strings.HasPrefix(path, "*/") {
			path = path[2:]
			descend = DescendAll
		}

		segment := path
		if slash := strings.IndexByte(path, '/'); slash >= 0 {
			segment, path = path[:slash], path[slash+1:]

			// a trailing slash leaves no segment to resolve
			if path == "" {
				return nil
			}
		} else {
			path = ""
		}

		if segment == "" || len(segment) > maxSegment {
			return nil
		}

		if node = FindElement(node, node, descend, WithName(segment)); node == nil {
			return nil
		}
	}

	// path lookups conventionally want the content of a leaf element, not
	// the element wrapper
	if child := node.FirstChild; child != nil && child.Kind != ElementKind {
		return child
	}

	return node
}
