package htmlconverter

import (
	"fmt"

	"go.uber.org/zap"
)

// FlushPolicy controls when the running inline buffer is flushed into a
// paragraph relative to block-level siblings.
type FlushPolicy string

const (
	// FlushBeforeBlock flushes the buffer whenever a block-level sibling
	// is about to be emitted, keeping output in visual order.
	FlushBeforeBlock FlushPolicy = "before-block"
	// FlushAtWalkEnd only flushes at the end of a sibling walk. Inline
	// text surrounding block siblings is merged into one trailing
	// paragraph (legacy behavior).
	FlushAtWalkEnd FlushPolicy = "walk-end"
)

// InlineNesting controls how deep nested formatting elements are resolved.
type InlineNesting string

const (
	// NestingShallow resolves one level of formatting: a formatting
	// element contributes its own attribute over its flattened text.
	NestingShallow InlineNesting = "shallow"
	// NestingDeep recurses through nested formatting elements, merging
	// attribute sets down the chain.
	NestingDeep InlineNesting = "deep"
)

// ListItemStyle controls inline fidelity inside list items.
type ListItemStyle string

const (
	// ListItemFlatten keeps only the flattened text of a list item.
	ListItemFlatten ListItemStyle = "flatten"
	// ListItemRich resolves list item children like paragraph children,
	// preserving inline formatting.
	ListItemRich ListItemStyle = "rich"
)

// UnknownBlockPolicy controls behavior for unrecognized element tags.
type UnknownBlockPolicy string

const (
	// UnknownParagraph converts unrecognized elements to a paragraph
	// holding their flattened text, so content is never dropped.
	UnknownParagraph UnknownBlockPolicy = "paragraph"
	// UnknownSkip drops unrecognized elements with a warning.
	UnknownSkip UnknownBlockPolicy = "skip"
	// UnknownError aborts the conversion on the first unrecognized element.
	UnknownError UnknownBlockPolicy = "error"
)

// Config holds all converter configuration options.
type Config struct {
	FlushPolicy   FlushPolicy        `json:"flushPolicy,omitempty"`
	InlineNesting InlineNesting      `json:"inlineNesting,omitempty"`
	ListItemStyle ListItemStyle      `json:"listItemStyle,omitempty"`
	UnknownBlocks UnknownBlockPolicy `json:"unknownBlocks,omitempty"`
	Logger        *zap.Logger        `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.FlushPolicy == "" {
		c.FlushPolicy = FlushBeforeBlock
	}
	if c.InlineNesting == "" {
		c.InlineNesting = NestingShallow
	}
	if c.ListItemStyle == "" {
		c.ListItemStyle = ListItemFlatten
	}
	if c.UnknownBlocks == "" {
		c.UnknownBlocks = UnknownParagraph
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.FlushPolicy != FlushBeforeBlock && c.FlushPolicy != FlushAtWalkEnd {
		return fmt.Errorf("invalid flushPolicy %q", c.FlushPolicy)
	}
	if c.InlineNesting != NestingShallow && c.InlineNesting != NestingDeep {
		return fmt.Errorf("invalid inlineNesting %q", c.InlineNesting)
	}
	if c.ListItemStyle != ListItemFlatten && c.ListItemStyle != ListItemRich {
		return fmt.Errorf("invalid listItemStyle %q", c.ListItemStyle)
	}
	if c.UnknownBlocks != UnknownParagraph && c.UnknownBlocks != UnknownSkip && c.UnknownBlocks != UnknownError {
		return fmt.Errorf("invalid unknownBlocks policy %q", c.UnknownBlocks)
	}

	return nil
}
