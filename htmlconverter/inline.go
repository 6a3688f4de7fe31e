package htmlconverter

import (
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/rgonek/html-doc-converter/document"
)

// applyFormatting resolves one formatting element and appends its text
// contribution to the delta with the element's attribute set applied.
func (s *state) applyFormatting(delta document.Delta, el *html.Node) document.Delta {
	attrs := s.formattingAttributes(el)
	if s.config.InlineNesting == NestingDeep {
		return s.appendInlineDeep(delta, el, attrs)
	}
	return delta.Append(extractText(el), attrs)
}

// appendInlineDeep recurses through nested formatting elements, merging
// attribute sets down the chain.
func (s *state) appendInlineDeep(delta document.Delta, el *html.Node, inherited document.Attributes) document.Delta {
	for _, child := range childNodes(el) {
		switch child.Type {
		case html.TextNode:
			delta = delta.Append(child.Data, inherited)
		case html.ElementNode:
			if classifyTag(elementTag(child)) == classFormatting {
				merged := inherited.Merge(s.formattingAttributes(child))
				delta = s.appendInlineDeep(delta, child, merged)
			} else {
				delta = delta.Append(extractText(child), inherited)
			}
		}
	}
	return delta
}

// resolveInlineChildren builds a delta from the direct children of a
// paragraph-like element: text is appended plain, formatting elements are
// resolved independently, anything else contributes its flattened text.
func (s *state) resolveInlineChildren(el *html.Node) document.Delta {
	var delta document.Delta
	for _, child := range childNodes(el) {
		switch child.Type {
		case html.TextNode:
			delta = delta.Append(child.Data, nil)
		case html.ElementNode:
			tag := elementTag(child)
			switch classifyTag(tag) {
			case classFormatting:
				delta = s.applyFormatting(delta, child)
			case classImage:
				s.addWarning(WarningDroppedImage, tag, "image elements are not supported")
			default:
				delta = delta.Append(extractText(child), nil)
			}
		}
	}
	return delta
}

// formattingAttributes determines the attribute contribution of a
// formatting element from its tag identity. The switch covers the same
// closed vocabulary as classifyTag; the default arm means the two tables
// are out of sync.
func (s *state) formattingAttributes(el *html.Node) document.Attributes {
	switch tag := elementTag(el); tag {
	case "b", "strong":
		return document.Attributes{document.AttrBold: true}
	case "i", "em":
		return document.Attributes{document.AttrItalic: true}
	case "u":
		return document.Attributes{document.AttrUnderline: true}
	case "del":
		return document.Attributes{document.AttrStrikethrough: true}
	case "code":
		return document.Attributes{document.AttrCode: true}
	case "a":
		if href, ok := attrValue(el, "href"); ok {
			return document.Attributes{document.AttrHref: href}
		}
		return nil
	case "span":
		style, ok := attrValue(el, "style")
		if !ok {
			return nil
		}
		return s.styleAttributes(style)
	default:
		s.addWarning(WarningInternal, tag, "formatting tag missing from resolver table")
		s.log.Error("formatting resolver table out of sync", zap.String("tag", tag))
		return nil
	}
}
