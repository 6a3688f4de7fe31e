package htmlconverter

// tagClass partitions the tag vocabulary. Every tag maps to exactly one
// class; classifyTag and the inline resolver switch over the same closed
// formatting set, so a formatting tag unknown to the resolver indicates
// the tables are out of sync.
type tagClass int

const (
	// classFormatting contributes an attribute to surrounding inline text.
	classFormatting tagClass = iota
	// classBlock produces one or more standalone document nodes.
	classBlock
	// classImage is recognized but unimplemented: produces nothing.
	classImage
	// classOther falls through to the unknown-block policy.
	classOther
)

func classifyTag(tag string) tagClass {
	switch tag {
	case "a", "i", "em", "b", "u", "del", "strong", "span", "code":
		return classFormatting
	case "h1", "h2", "h3", "ul", "ol", "li", "p", "blockquote":
		return classBlock
	case "img":
		return classImage
	default:
		return classOther
	}
}

// headingLevel returns the level for a heading tag, or 0 if the tag is
// not a recognized heading.
func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	default:
		return 0
	}
}
