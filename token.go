package microxml

type Text string
type CData string
type Comment string
type Directive string

type StartTag struct {
	Name        string
	Attrs       []Attr
	SelfClosing bool
}

type EndTag struct {
	Name string
}
