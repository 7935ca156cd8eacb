package microxml

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

type Parser struct {
	tokens *Tokenizer
}

func Parse(r io.RuneScanner) (*Node, error) {
	return NewParser(r).Parse()
}

func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

func NewParser(r io.RuneScanner) *Parser {
	return &Parser{tokens: NewTokenizer(r)}
}

// Parse reads the whole document and returns its root element. Comments,
// directives and whitespace around the root are dropped, any other content
// outside of it is an error. End tags must match the innermost open element.
func (p *Parser) Parse() (*Node, error) {
	var root *Node // the document root element
	var open *Node // the innermost element still waiting for its end tag

	for {
		t, err := p.tokens.Token()
		if err == io.EOF {
			if open != nil {
				return nil, fmt.Errorf("element <%s> is not closed", open.Name)
			}

			if root == nil {
				return nil, errors.New("document has no root element")
			}

			return root, nil
		}

		if err != nil {
			return nil, err
		}

		switch token := t.(type) {
		case Text:
			if open == nil {
				if strings.TrimSpace(string(token)) != "" {
					return nil, errors.New("text outside of root element")
				}

				continue
			}

			NewText(open, string(token))
		case CData:
			if open == nil {
				return nil, errors.New("CDATA section outside of root element")
			}

			NewText(open, string(token))
		case Comment:
			if open == nil {
				continue
			}

			NewComment(open, string(token))
		case Directive:
			if open == nil {
				continue
			}

			NewDirective(open, string(token))
		case StartTag:
			if open == nil && root != nil {
				return nil, fmt.Errorf("unexpected second root element <%s>", token.Name)
			}

			node := NewElement(open, token.Name)
			node.Attrs = token.Attrs

			if open == nil {
				root = node
			}

			if !token.SelfClosing {
				open = node
			}
		case EndTag:
			if open == nil {
				return nil, fmt.Errorf("unexpected end tag </%s>", token.Name)
			}

			if open.Name != token.Name {
				return nil, fmt.Errorf("end tag </%s> does not match element <%s>", token.Name, open.Name)
			}

			open = open.Parent
		default:
			return nil, fmt.Errorf("unexpected token %T", t)
		}
	}
}
