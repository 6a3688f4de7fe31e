// Package htmlconverter decodes an HTML document into the rich-text
// document model: typed block nodes (paragraphs, headings, list items,
// quotes) whose inline content is a delta of attributed text runs.
//
// The conversion is one-way (HTML in) and never fails on malformed
// input; anything unexpected degrades into the warning channel of the
// returned Result.
package htmlconverter

import (
	"bytes"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/rgonek/html-doc-converter/document"
)

// Converter converts HTML to the document model.
type Converter struct {
	config Config
}

type state struct {
	config   Config
	log      *zap.Logger
	warnings []Warning
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{config: cfg}, nil
}

// Convert parses an HTML document and decodes the contents of its body
// into a document. A document without a body yields an empty document,
// not an error.
func (c *Converter) Convert(input []byte) (Result, error) {
	root, err := html.Parse(bytes.NewReader(input))
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse html: %w", err)
	}

	return c.ConvertNode(root)
}

// ConvertNode decodes an already-parsed HTML tree. The body element is
// located anywhere under root.
func (c *Converter) ConvertNode(root *html.Node) (Result, error) {
	s := &state{
		config: c.config,
		log:    c.config.Logger,
	}

	body := findElement(root, "body")
	if body == nil {
		return Result{Document: document.New(nil)}, nil
	}

	content, err := s.convertSiblings(childNodes(body))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Document: document.New(content),
		Warnings: s.warnings,
	}, nil
}

func (s *state) addWarning(warnType WarningType, tag, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:    warnType,
		Tag:     tag,
		Message: message,
	})
}

// findElement returns the first element with the given tag in a
// depth-first walk of the tree rooted at node.
func findElement(node *html.Node, tag string) *html.Node {
	if node == nil {
		return nil
	}
	if node.Type == html.ElementNode && node.Data == tag {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// childNodes collects the ordered direct children of node.
func childNodes(node *html.Node) []*html.Node {
	var children []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		children = append(children, child)
	}
	return children
}

// extractText returns the flattened text of an element: the
// concatenation of all descendant text nodes, discarding tag structure.
func extractText(node *html.Node) string {
	var builder strings.Builder

	var walk func(current *html.Node)
	walk = func(current *html.Node) {
		if current.Type == html.TextNode {
			builder.WriteString(current.Data)
			return
		}
		for child := current.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)

	return builder.String()
}

// attrValue returns the value of the named attribute and whether it is
// present on the element.
func attrValue(node *html.Node, key string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// elementTag returns the lowercase tag name of an element node. The
// tokenizer already lowercases known tags; this covers hand-built trees.
func elementTag(node *html.Node) string {
	return strings.ToLower(node.Data)
}
