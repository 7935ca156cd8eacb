package microxml

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

type Tokenizer struct {
	r io.RuneScanner
}

func NewTokenizer(r io.RuneScanner) *Tokenizer {
	return &Tokenizer{r: r}
}

func (l *Tokenizer) Token() (any, error) {
	char, _, err := l.r.ReadRune()
	if err != nil {
		return nil, err
	}

	if char != '<' {
		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		return l.readText()
	}

	char, _, err = l.r.ReadRune()
	if err == io.EOF {
		return nil, errors.New("EOF: tag is not closed")
	}

	if err != nil {
		return nil, err
	}

	switch {
	case char == '/':
		return l.readEndTag()
	case char == '!':
		return l.readDeclaration()
	case char == '?':
		return l.readProcessing()
	case isNameStart(char):
		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		return l.readStartTag()
	default:
		return nil, fmt.Errorf("unexpected character %q after <", char)
	}
}

// readText reads character data until the next tag, resolving entity
// references along the way
func (l *Tokenizer) readText() (any, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return Text(runes), nil
		}

		if err != nil {
			return nil, err
		}

		if read == '<' {
			return Text(runes), l.r.UnreadRune()
		}

		if read == '&' {
			val, err := l.readEntity()
			if err != nil {
				return nil, err
			}

			runes = append(runes, []rune(val)...)
			continue
		}

		runes = append(runes, read)
	}
}

// readEntity reads an entity reference after &, up to and including ;
func (l *Tokenizer) readEntity() (string, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return "", errors.New("EOF: entity reference is not closed")
		}

		if err != nil {
			return "", err
		}

		if read == ';' {
			return entity(string(runes))
		}

		if isWhitespace(read) || read == '<' || read == '&' {
			return "", fmt.Errorf("entity reference &%s is not closed", string(runes))
		}

		runes = append(runes, read)
	}
}

func (l *Tokenizer) readStartTag() (any, error) {
	name, err := l.name()
	if err != nil {
		return nil, err
	}

	tag := StartTag{Name: name}

	for {
		if err := l.whitespaces(); err != nil {
			return nil, err
		}

		char, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil, fmt.Errorf("EOF: tag <%s is not closed", name)
		}

		if err != nil {
			return nil, err
		}

		if char == '>' {
			return tag, nil
		}

		if char == '/' {
			if err := l.expect('>'); err != nil {
				return nil, err
			}

			tag.SelfClosing = true
			return tag, nil
		}

		if !isNameStart(char) {
			return nil, fmt.Errorf("unexpected character %q in tag <%s", char, name)
		}

		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		attr, err := l.readAttr(name)
		if err != nil {
			return nil, err
		}

		tag.Attrs = append(tag.Attrs, attr)
	}
}

func (l *Tokenizer) readAttr(tag string) (Attr, error) {
	name, err := l.name()
	if err != nil {
		return Attr{}, err
	}

	if err := l.whitespaces(); err != nil {
		return Attr{}, err
	}

	char, _, err := l.r.ReadRune()
	if err == io.EOF {
		return Attr{}, fmt.Errorf("EOF: tag <%s is not closed", tag)
	}

	if err != nil {
		return Attr{}, err
	}

	// attribute without value, keep it with an empty one
	if char != '=' {
		if err := l.r.UnreadRune(); err != nil {
			return Attr{}, err
		}

		return Attr{Name: name}, nil
	}

	if err := l.whitespaces(); err != nil {
		return Attr{}, err
	}

	value, err := l.readQuoted(name)
	if err != nil {
		return Attr{}, err
	}

	return Attr{Name: name, Value: value}, nil
}

// readQuoted reads a quoted attribute value, either ' or " may be used as
// the delimiter
func (l *Tokenizer) readQuoted(attr string) (string, error) {
	quote, _, err := l.r.ReadRune()
	if err != nil {
		return "", err
	}

	if quote != '"' && quote != '\'' {
		return "", fmt.Errorf("attribute %s value must be quoted", attr)
	}

	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return "", fmt.Errorf("EOF: attribute %s value is not closed", attr)
		}

		if err != nil {
			return "", err
		}

		if read == quote {
			return string(runes), nil
		}

		if read == '&' {
			val, err := l.readEntity()
			if err != nil {
				return "", err
			}

			runes = append(runes, []rune(val)...)
			continue
		}

		runes = append(runes, read)
	}
}

func (l *Tokenizer) readEndTag() (any, error) {
	name, err := l.name()
	if err != nil {
		return nil, err
	}

	if err := l.whitespaces(); err != nil {
		return nil, err
	}

	if err := l.expect('>'); err != nil {
		return nil, err
	}

	return EndTag{Name: name}, nil
}

// readDeclaration reads markup after <!, either a comment, a CDATA section
// or a declaration like <!DOCTYPE ...>
func (l *Tokenizer) readDeclaration() (any, error) {
	char, _, err := l.r.ReadRune()
	if err == io.EOF {
		return nil, errors.New("EOF: declaration is not closed")
	}

	if err != nil {
		return nil, err
	}

	switch char {
	case '-':
		if err := l.expect('-'); err != nil {
			return nil, err
		}

		return l.readComment()
	case '[':
		for _, e := range "CDATA[" {
			if err := l.expect(e); err != nil {
				return nil, err
			}
		}

		return l.readCData()
	case '>':
		return Directive("!"), nil
	}

	var runes = []rune{'!', char}
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil, errors.New("EOF: declaration is not closed")
		}

		if err != nil {
			return nil, err
		}

		if read == '>' {
			return Directive(runes), nil
		}

		runes = append(runes, read)
	}
}

// readComment reads comment content until -->
func (l *Tokenizer) readComment() (any, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil, errors.New("EOF: comment is not closed")
		}

		if err != nil {
			return nil, err
		}

		runes = append(runes, read)

		if strings.HasSuffix(string(runes), "-->") {
			return Comment(strings.TrimSuffix(string(runes), "-->")), nil
		}
	}
}

// readCData reads a CDATA section until ]]>, content is taken verbatim
func (l *Tokenizer) readCData() (any, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil, errors.New("EOF: CDATA section is not closed")
		}

		if err != nil {
			return nil, err
		}

		runes = append(runes, read)

		if strings.HasSuffix(string(runes), "]]>") {
			return CData(strings.TrimSuffix(string(runes), "]]>")), nil
		}
	}
}

// readProcessing reads a processing instruction until ?>
func (l *Tokenizer) readProcessing() (any, error) {
	var runes = []rune{'?'}
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil, errors.New("EOF: processing instruction is not closed")
		}

		if err != nil {
			return nil, err
		}

		runes = append(runes, read)

		if strings.HasSuffix(string(runes), "?>") {
			return Directive(strings.TrimSuffix(string(runes), "?>") + "?"), nil
		}
	}
}

// name reads an element or attribute name
func (l *Tokenizer) name() (string, error) {
	char, _, err := l.r.ReadRune()
	if err == io.EOF {
		return "", errors.New("EOF: name is expected")
	}

	if err != nil {
		return "", err
	}

	if !isNameStart(char) {
		return "", fmt.Errorf("character %q cannot start a name", char)
	}

	runes := []rune{char}
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return string(runes), nil
		}

		if err != nil {
			return "", err
		}

		if !isNameChar(read) {
			return string(runes), l.r.UnreadRune()
		}

		runes = append(runes, read)
	}
}

// whitespaces skips until next non-whitespace symbol
func (l *Tokenizer) whitespaces() error {
	for {
		r, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if !isWhitespace(r) {
			return l.r.UnreadRune()
		}
	}
}

// expect verifies that the following symbol is "e"
func (l *Tokenizer) expect(e rune) error {
	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		return fmt.Errorf("EOF: expected symbol %c", e)
	}

	if err != nil {
		return err
	}

	if r != e {
		return fmt.Errorf("expected symbol %c, got %c instead", e, r)
	}

	return nil
}

func isNameStart(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_' || r == ':'
}

func isNameChar(r rune) bool {
	return isNameStart(r) || '0' <= r && r <= '9' || r == '-' || r == '.'
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n', '\t', '\r':
		return true
	default:
		return false
	}
}
