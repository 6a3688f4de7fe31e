package htmlconverter

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rgonek/html-doc-converter/colors"
	"github.com/rgonek/html-doc-converter/document"
)

// boldWeightThreshold is the minimum numeric font-weight treated as bold.
const boldWeightThreshold = 500

type styleDeclaration struct {
	property string
	value    string
}

// parseStyleDeclarations splits a CSS declaration string on ";" and each
// declaration on its first ":". Declarations without a colon are skipped
// silently; malformed CSS is never fatal.
func parseStyleDeclarations(style string) []styleDeclaration {
	var decls []styleDeclaration
	for _, part := range strings.Split(style, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		property, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		decls = append(decls, styleDeclaration{
			property: strings.ToLower(strings.TrimSpace(property)),
			value:    strings.TrimSpace(value),
		})
	}
	return decls
}

// styleAttributes maps recognized CSS properties of an inline style
// string to the attribute vocabulary. It returns nil when no property
// resolved, so callers can distinguish "no style" from an empty set.
func (s *state) styleAttributes(style string) document.Attributes {
	attrs := document.Attributes{}

	for _, decl := range parseStyleDeclarations(style) {
		switch decl.property {
		case "font-weight":
			if decl.value == "bold" {
				attrs[document.AttrBold] = true
				continue
			}
			weight, err := strconv.Atoi(decl.value)
			if err != nil {
				s.log.Debug("ignoring unparseable font-weight", zap.String("value", decl.value))
				continue
			}
			if weight >= boldWeightThreshold {
				attrs[document.AttrBold] = true
			}

		case "text-decoration":
			for _, token := range strings.Split(decl.value, " ") {
				switch token {
				case "underline":
					attrs[document.AttrUnderline] = true
				case "line-through":
					attrs[document.AttrStrikethrough] = true
				}
			}

		case "background-color":
			hex, ok := colors.Parse(decl.value)
			if !ok {
				s.addWarning(WarningIgnoredStyle, "span", "unresolvable background-color "+decl.value)
				continue
			}
			attrs[document.AttrBgColor] = hex

		case "font-style":
			if decl.value == "italic" {
				attrs[document.AttrItalic] = true
			}
		}
		// Unrecognized properties are ignored without error.
	}

	if len(attrs) == 0 {
		return nil
	}
	return attrs
}
