package microxml

// Attr is a single name="value" pair on an element. Attribute order is the
// document order and is preserved by SetAttr.
type Attr struct {
	Name  string
	Value string
}

// SetAttr sets an attribute, replacing the value in place if an attribute
// with the same name already exists.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}

	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// AttrValue looks up an attribute by exact name. The second return value
// reports whether the attribute is present, so an empty value can be told
// apart from a missing attribute.
func (n *Node) AttrValue(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}

	return "", false
}

// RemoveAttr removes an attribute by name, if present.
func (n *Node) RemoveAttr(name string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return
		}
	}
}
