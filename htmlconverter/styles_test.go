package htmlconverter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/rgonek/html-doc-converter/document"
)

func newTestState(t testing.TB) *state {
	t.Helper()
	return &state{
		config: (Config{}).applyDefaults(),
		log:    zap.NewNop(),
	}
}

func TestParseStyleDeclarations(t *testing.T) {
	decls := parseStyleDeclarations("font-weight: bold; COLOR : red ;;broken;margin:1px")

	assert.Equal(t, []styleDeclaration{
		{property: "font-weight", value: "bold"},
		{property: "color", value: "red"},
		{property: "margin", value: "1px"},
	}, decls)
}

func TestParseStyleDeclarationsEmpty(t *testing.T) {
	assert.Nil(t, parseStyleDeclarations(""))
	assert.Nil(t, parseStyleDeclarations("   ;  ; "))
	assert.Nil(t, parseStyleDeclarations("no-colon-here"))
}

func TestStyleAttributesFontWeight(t *testing.T) {
	s := newTestState(t)

	tests := []struct {
		name  string
		style string
		want  document.Attributes
	}{
		{"keyword bold", "font-weight: bold", document.Attributes{document.AttrBold: true}},
		{"numeric above threshold", "font-weight: 700", document.Attributes{document.AttrBold: true}},
		{"threshold is inclusive", "font-weight: 500", document.Attributes{document.AttrBold: true}},
		{"below threshold", "font-weight: 499", nil},
		{"non-numeric ignored", "font-weight: lighter", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.styleAttributes(tt.style))
		})
	}
}

func TestStyleAttributesTextDecoration(t *testing.T) {
	s := newTestState(t)

	attrs := s.styleAttributes("text-decoration: underline line-through")
	assert.Equal(t, document.Attributes{
		document.AttrUnderline:     true,
		document.AttrStrikethrough: true,
	}, attrs)

	attrs = s.styleAttributes("text-decoration: overline blink")
	assert.Nil(t, attrs)
}

func TestStyleAttributesFontStyle(t *testing.T) {
	s := newTestState(t)

	assert.Equal(t, document.Attributes{document.AttrItalic: true}, s.styleAttributes("font-style: italic"))
	assert.Nil(t, s.styleAttributes("font-style: oblique"))
}

func TestStyleAttributesBackgroundColor(t *testing.T) {
	s := newTestState(t)

	assert.Equal(t,
		document.Attributes{document.AttrBgColor: "#ff0000"},
		s.styleAttributes("background-color: rgb(255,0,0)"))

	// Unresolvable color: property ignored, warning recorded.
	assert.Nil(t, s.styleAttributes("background-color: bleen"))
	assert.NotEmpty(t, s.warnings)
	assert.Equal(t, WarningIgnoredStyle, s.warnings[len(s.warnings)-1].Type)
}

func TestStyleAttributesUnrecognizedOnly(t *testing.T) {
	s := newTestState(t)

	// No recognized properties resolves to an absent set, not an empty one.
	assert.Nil(t, s.styleAttributes("color:red;;margin:1px"))
}

func TestStyleAttributesCombined(t *testing.T) {
	s := newTestState(t)

	attrs := s.styleAttributes("font-weight:700; text-decoration: underline; background-color: #ff0; font-style: italic")
	assert.Equal(t, document.Attributes{
		document.AttrBold:      true,
		document.AttrUnderline: true,
		document.AttrItalic:    true,
		document.AttrBgColor:   "#ffff00",
	}, attrs)
}
