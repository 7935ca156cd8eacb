package microxml

type Kind int

const (
	ElementKind Kind = iota
	TextKind
	CommentKind
	DirectiveKind
)

// Node is a single node in the document tree. Elements carry a Name and
// attributes, all other kinds carry their payload in Data and never have
// children.
//
// Children are linked both ways: FirstChild/LastChild delimit the child list,
// PrevSibling/NextSibling link nodes within it and Parent points back up.
type Node struct {
	Kind  Kind
	Name  string
	Data  string
	Attrs []Attr

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node
}

func NewElement(parent *Node, name string) *Node {
	node := &Node{Kind: ElementKind, Name: name}
	if parent != nil {
		parent.AppendChild(node)
	}

	return node
}

func NewText(parent *Node, data string) *Node {
	node := &Node{Kind: TextKind, Data: data}
	if parent != nil {
		parent.AppendChild(node)
	}

	return node
}

func NewComment(parent *Node, data string) *Node {
	node := &Node{Kind: CommentKind, Data: data}
	if parent != nil {
		parent.AppendChild(node)
	}

	return node
}

func NewDirective(parent *Node, data string) *Node {
	node := &Node{Kind: DirectiveKind, Data: data}
	if parent != nil {
		parent.AppendChild(node)
	}

	return node
}

// AppendChild detaches child from its current position and adds it as the
// last child of n.
func (n *Node) AppendChild(child *Node) {
	child.Remove()

	child.Parent = n
	child.PrevSibling = n.LastChild

	if n.LastChild != nil {
		n.LastChild.NextSibling = child
	} else {
		n.FirstChild = child
	}

	n.LastChild = child
}

// InsertBefore detaches child from its current position and inserts it
// before ref in n's child list. A nil ref appends.
func (n *Node) InsertBefore(child, ref *Node) {
	if ref == nil {
		n.AppendChild(child)
		return
	}

	child.Remove()

	child.Parent = n
	child.NextSibling = ref
	child.PrevSibling = ref.PrevSibling

	if ref.PrevSibling != nil {
		ref.PrevSibling.NextSibling = child
	} else {
		n.FirstChild = child
	}

	ref.PrevSibling = child
}

// Remove detaches n (with its whole subtree) from its parent. Removing an
// already detached node is a no-op.
func (n *Node) Remove() {
	if n.Parent == nil {
		return
	}

	if n.PrevSibling != nil {
		n.PrevSibling.NextSibling = n.NextSibling
	} else {
		n.Parent.FirstChild = n.NextSibling
	}

	if n.NextSibling != nil {
		n.NextSibling.PrevSibling = n.PrevSibling
	} else {
		n.Parent.LastChild = n.PrevSibling
	}

	n.Parent = nil
	n.PrevSibling = nil
	n.NextSibling = nil
}
