package htmlconverter

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/rgonek/html-doc-converter/document"
)

// convertSiblings walks a list of sibling DOM nodes and produces the
// block nodes they decode to. One inline buffer accumulates text and
// formatting runs; it is flushed into a paragraph according to the
// configured flush policy and at the end of the walk.
func (s *state) convertSiblings(nodes []*html.Node) ([]document.Node, error) {
	var content []document.Node
	var buffer document.Delta

	flush := func() {
		if !buffer.IsEmpty() {
			content = append(content, document.NewParagraph(buffer))
			buffer = nil
		}
	}

	for _, node := range nodes {
		switch node.Type {
		case html.TextNode:
			// Whitespace between block siblings never starts a paragraph.
			if buffer.IsEmpty() && isWhitespace(node.Data) {
				continue
			}
			buffer = buffer.Append(node.Data, nil)

		case html.ElementNode:
			tag := elementTag(node)
			switch classifyTag(tag) {
			case classFormatting:
				buffer = s.applyFormatting(buffer, node)

			case classBlock:
				if s.config.FlushPolicy == FlushBeforeBlock {
					flush()
				}
				blocks, err := s.convertBlockElement(tag, node)
				if err != nil {
					return nil, err
				}
				content = append(content, blocks...)

			case classImage:
				s.addWarning(WarningDroppedImage, tag, "image elements are not supported")
				s.log.Debug("dropping image element")

			case classOther:
				// Fallback paragraphs are block nodes too; they obey the
				// same flush policy as the recognized block set.
				if s.config.FlushPolicy == FlushBeforeBlock {
					flush()
				}
				blocks, err := s.convertUnknownElement(tag, node)
				if err != nil {
					return nil, err
				}
				content = append(content, blocks...)
			}
		}
		// Comments and doctype nodes carry no content.
	}

	flush()
	return content, nil
}

// convertBlockElement dispatches one block-level element to its
// block-producing rule.
func (s *state) convertBlockElement(tag string, el *html.Node) ([]document.Node, error) {
	switch tag {
	case "h1", "h2", "h3":
		// Heading inline formatting is not preserved; only flattened text.
		delta := document.Delta{}.Append(extractText(el), nil)
		return []document.Node{document.NewHeading(headingLevel(tag), delta)}, nil

	case "blockquote":
		delta := document.Delta{}.Append(extractText(el), nil)
		return []document.Node{document.NewQuote(delta)}, nil

	case "p":
		return []document.Node{document.NewParagraph(s.resolveInlineChildren(el))}, nil

	case "ul":
		return s.convertListItems(el, document.NewBulletedListItem), nil

	case "ol":
		return s.convertListItems(el, document.NewNumberedListItem), nil

	case "li":
		// A list item outside a list: reclassify its children through the
		// same dispatch, flattening the result (handles irregular markup).
		return s.convertSiblings(childNodes(el))

	default:
		s.addWarning(WarningInternal, tag, "block tag missing from dispatch table")
		s.log.Error("block dispatch table out of sync", zap.String("tag", tag))
		return nil, nil
	}
}

// convertListItems produces one list item node per direct child element
// of a ul/ol element.
func (s *state) convertListItems(list *html.Node, newItem func(document.Delta) document.Node) []document.Node {
	var items []document.Node
	for _, child := range childNodes(list) {
		if child.Type != html.ElementNode {
			continue
		}
		items = append(items, newItem(s.listItemDelta(child)))
	}
	return items
}

func (s *state) listItemDelta(item *html.Node) document.Delta {
	if s.config.ListItemStyle == ListItemRich {
		return s.resolveInlineChildren(item)
	}
	return document.Delta{}.Append(extractText(item), nil)
}

// convertUnknownElement applies the unknown-block policy to an element
// outside both the formatting and block vocabularies.
func (s *state) convertUnknownElement(tag string, el *html.Node) ([]document.Node, error) {
	switch s.config.UnknownBlocks {
	case UnknownError:
		return nil, fmt.Errorf("unknown element tag %q", tag)

	case UnknownSkip:
		s.addWarning(WarningUnknownBlock, tag, "unknown element skipped")
		return nil, nil

	default:
		text := extractText(el)
		if text == "" {
			s.log.Debug("unknown element with no text content", zap.String("tag", tag))
			return nil, nil
		}
		s.addWarning(WarningUnknownBlock, tag, "unknown element converted to paragraph")
		delta := document.Delta{}.Append(text, nil)
		return []document.Node{document.NewParagraph(delta)}, nil
	}
}

func isWhitespace(text string) bool {
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
		default:
			return false
		}
	}
	return true
}
