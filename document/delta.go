package document

// Attribute keys carried by text runs.
const (
	AttrBold          = "bold"
	AttrItalic        = "italic"
	AttrUnderline     = "underline"
	AttrStrikethrough = "strikethrough"
	AttrCode          = "code"
	AttrHref          = "href"
	AttrBgColor       = "bgColor"
)

// Attributes maps attribute keys to values. Boolean toggles hold true;
// href and bgColor hold strings.
type Attributes map[string]any

// Merge returns a copy of a with all entries of overlay added on top.
// Later/inner attributes win; nothing is ever removed. A nil result
// means neither side carried any attribute.
func (a Attributes) Merge(overlay Attributes) Attributes {
	if len(a) == 0 && len(overlay) == 0 {
		return nil
	}

	merged := make(Attributes, len(a)+len(overlay))
	for key, value := range a {
		merged[key] = value
	}
	for key, value := range overlay {
		merged[key] = value
	}
	return merged
}

// TextRun is one span of text carrying a single attribute set.
type TextRun struct {
	Insert     string     `json:"insert"`
	Attributes Attributes `json:"attributes,omitempty"`
}

// Delta is the ordered sequence of attributed runs making up one block's
// inline content.
type Delta []TextRun

// Append adds one run to the delta. Empty text contributes nothing.
func (d Delta) Append(text string, attrs Attributes) Delta {
	if text == "" {
		return d
	}
	return append(d, TextRun{Insert: text, Attributes: attrs})
}

// IsEmpty reports whether the delta holds no runs.
func (d Delta) IsEmpty() bool {
	return len(d) == 0
}

// Text returns the concatenated text of all runs, discarding attributes.
func (d Delta) Text() string {
	var text string
	for _, run := range d {
		text += run.Insert
	}
	return text
}
