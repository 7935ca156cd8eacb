package microxml_test

import (
	"strings"
	"testing"

	"github.com/eolymp/go-microxml"
)

// render is a shortcut to serialize a subtree into a string
func render(t *testing.T, node *microxml.Node) string {
	t.Helper()

	var out strings.Builder
	if err := microxml.Render(&out, node); err != nil {
		t.Fatalf("Unable to render node: %v", err)
	}

	return out.String()
}

func TestParser(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output string // re-rendered form, defaults to input when empty
	}{
		{
			name:  "nested elements",
			input: "<a><b><c>text</c></b></a>",
		},
		{
			name:  "attributes",
			input: `<a href="https://eolymp.com" target="_blank">link</a>`,
		},
		{
			name:   "single quoted attribute",
			input:  `<a b='c'/>`,
			output: `<a b="c"/>`,
		},
		{
			name:   "childless element normalizes to self closing",
			input:  "<a></a>",
			output: "<a/>",
		},
		{
			name:  "mixed content",
			input: "<p>one <b>two</b> three</p>",
		},
		{
			name:  "whitespace between elements is kept",
			input: "<a>\n  <b/>\n</a>",
		},
		{
			name:  "comment inside element",
			input: "<a><!-- note --></a>",
		},
		{
			name:  "directive inside element",
			input: "<a><?php echo 1; ?></a>",
		},
		{
			name:   "entities round trip escaped",
			input:  "<m>1 &lt; 2 &amp;&amp; 3 &gt; 2</m>",
			output: "<m>1 &lt; 2 &amp;&amp; 3 &gt; 2</m>",
		},
		{
			name:   "cdata becomes escaped text",
			input:  "<m><![CDATA[a < b]]></m>",
			output: "<m>a &lt; b</m>",
		},
		{
			name:   "prolog and surrounding whitespace are dropped",
			input:  "<?xml version=\"1.0\"?>\n<!DOCTYPE a>\n<a>text</a>\n<!-- trailer -->\n",
			output: "<a>text</a>",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			root, err := microxml.ParseString(tc.input)
			if err != nil {
				t.Fatalf("Unable to parse document: %v", err)
			}

			want := tc.output
			if want == "" {
				want = tc.input
			}

			if got := render(t, root); got != want {
				t.Errorf("Round trip does not match:\n want %s\n  got %s\n", want, got)
			}
		})
	}
}

func TestParserErrors(t *testing.T) {
	tt := []struct {
		name  string
		input string
	}{
		{name: "empty document", input: ""},
		{name: "whitespace only", input: "  \n "},
		{name: "unclosed element", input: "<a><b></b>"},
		{name: "mismatched end tag", input: "<a></b>"},
		{name: "stray end tag", input: "<a/></a>"},
		{name: "text outside root", input: "<a/>text"},
		{name: "second root element", input: "<a/><b/>"},
		{name: "cdata outside root", input: "<![CDATA[x]]><a/>"},
		{name: "unknown entity", input: "<a>&nope;</a>"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := microxml.ParseString(tc.input); err == nil {
				t.Fatalf("Expected parsing of %q to fail", tc.input)
			}
		})
	}
}

func TestParserLinks(t *testing.T) {
	root, err := microxml.ParseString("<a><b/><c/><d/></a>")
	if err != nil {
		t.Fatalf("Unable to parse document: %v", err)
	}

	if root.Name != "a" || root.Parent != nil {
		t.Fatalf("Root is %s with parent %v", root.Name, root.Parent)
	}

	b, c, d := root.FirstChild, root.FirstChild.NextSibling, root.LastChild

	if b.Name != "b" || c.Name != "c" || d.Name != "d" {
		t.Fatalf("Children are %s, %s, %s", b.Name, c.Name, d.Name)
	}

	if b.PrevSibling != nil || d.NextSibling != nil {
		t.Errorf("Child list is not terminated on both ends")
	}

	if c.PrevSibling != b || c.NextSibling != d || d.PrevSibling != c {
		t.Errorf("Sibling links are inconsistent")
	}

	for node := b; node != nil; node = node.NextSibling {
		if node.Parent != root {
			t.Errorf("Node %s parent is not root", node.Name)
		}
	}
}
