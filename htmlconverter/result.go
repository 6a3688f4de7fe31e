package htmlconverter

import "github.com/rgonek/html-doc-converter/document"

// Result holds the output of a conversion.
type Result struct {
	Document document.Document `json:"document"`
	Warnings []Warning         `json:"warnings,omitempty"`
}

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningUnknownBlock WarningType = "unknown_block"
	WarningDroppedImage WarningType = "dropped_image"
	WarningIgnoredStyle WarningType = "ignored_style"
	WarningInternal     WarningType = "internal_inconsistency"
)

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Type    WarningType `json:"type"`
	Tag     string      `json:"tag,omitempty"`
	Message string      `json:"message"`
}
