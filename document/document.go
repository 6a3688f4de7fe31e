package document

// Node type identifiers for the block nodes a decoded document may contain.
const (
	TypeDocument     = "document"
	TypeParagraph    = "paragraph"
	TypeHeading      = "heading"
	TypeBulletedList = "bulleted_list"
	TypeNumberedList = "numbered_list"
	TypeQuote        = "quote"
)

// Document is the root of a decoded rich-text document.
type Document struct {
	Type    string `json:"type"`
	Content []Node `json:"content,omitempty"`
}

// Node represents one block-level node (paragraph, heading, list item,
// quote). Blocks are flat siblings; list items carry no list container.
type Node struct {
	Type  string `json:"type"`
	Level int    `json:"level,omitempty"`
	Delta Delta  `json:"delta,omitempty"`
}

// New creates a document rooted over the given block nodes.
func New(content []Node) Document {
	return Document{
		Type:    TypeDocument,
		Content: content,
	}
}

// NewParagraph creates a paragraph block owning the given delta.
func NewParagraph(delta Delta) Node {
	return Node{Type: TypeParagraph, Delta: delta}
}

// NewHeading creates a heading block at the given level (1-3).
func NewHeading(level int, delta Delta) Node {
	return Node{Type: TypeHeading, Level: level, Delta: delta}
}

// NewBulletedListItem creates a bulleted list item block.
func NewBulletedListItem(delta Delta) Node {
	return Node{Type: TypeBulletedList, Delta: delta}
}

// NewNumberedListItem creates a numbered list item block.
func NewNumberedListItem(delta Delta) Node {
	return Node{Type: TypeNumberedList, Delta: delta}
}

// NewQuote creates a quote block.
func NewQuote(delta Delta) Node {
	return Node{Type: TypeQuote, Delta: delta}
}
