package htmlconverter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTag(t *testing.T) {
	formatting := []string{"a", "i", "em", "b", "u", "del", "strong", "span", "code"}
	for _, tag := range formatting {
		assert.Equal(t, classFormatting, classifyTag(tag), tag)
	}

	block := []string{"h1", "h2", "h3", "ul", "ol", "li", "p", "blockquote"}
	for _, tag := range block {
		assert.Equal(t, classBlock, classifyTag(tag), tag)
	}

	assert.Equal(t, classImage, classifyTag("img"))

	for _, tag := range []string{"div", "hr", "h4", "table", "video", "custom-el"} {
		assert.Equal(t, classOther, classifyTag(tag), tag)
	}
}

func TestHeadingLevel(t *testing.T) {
	assert.Equal(t, 1, headingLevel("h1"))
	assert.Equal(t, 2, headingLevel("h2"))
	assert.Equal(t, 3, headingLevel("h3"))
	assert.Equal(t, 0, headingLevel("h4"))
	assert.Equal(t, 0, headingLevel("p"))
}
