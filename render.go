package microxml

import (
	"fmt"
	"io"
)

// Render writes the subtree rooted at node back as markup. Text and
// attribute values are escaped, childless elements are written in
// self-closing form.
func Render(w io.Writer, node *Node) error {
	switch node.Kind {
	case ElementKind:
		return renderElement(w, node)
	case TextKind:
		return renderText(w, node)
	case CommentKind:
		_, err := fmt.Fprintf(w, "<!--%s-->", node.Data)
		return err
	case DirectiveKind:
		_, err := fmt.Fprintf(w, "<%s>", node.Data)
		return err
	default:
		return nil
	}
}

func renderElement(w io.Writer, node *Node) error {
	if _, err := fmt.Fprint(w, "<", node.Name); err != nil {
		return err
	}

	for _, attr := range node.Attrs {
		if _, err := fmt.Fprintf(w, " %s=\"%s\"", attr.Name, escapeAttr(attr.Value)); err != nil {
			return err
		}
	}

	if node.FirstChild == nil {
		_, err := fmt.Fprint(w, "/>")
		return err
	}

	if _, err := fmt.Fprint(w, ">"); err != nil {
		return err
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if err := Render(w, child); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "</", node.Name, ">")
	return err
}

func renderText(w io.Writer, node *Node) error {
	_, err := fmt.Fprint(w, escape(node.Data))
	return err
}
