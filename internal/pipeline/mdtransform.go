package pipeline

import (
	"regexp"
	"strings"
)

// Placeholders use Unicode Private Use Area characters. Model replies never
// legitimately contain them, and any that do are stripped on input so the
// placeholders stay unique for the duration of a render.
const (
	BoldStartPlaceholder = "\uE000" // opens a bold span until the italic pass has run
	BoldEndPlaceholder   = "\uE001"

	blockStashOpen  = "\uE002" // stashed fenced code block reference
	inlineStashOpen = "\uE003" // stashed inline code span reference
	stashClose      = "\uE004"

	// blockMarker prefixes every line produced by a block-level pass.
	blockMarker = "\uE005"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Any placeholder character smuggled in by the input.
	placeholderChars = regexp.MustCompile("[\uE000-\uE005]")

	// Paragraph boundary: one or more blank (or whitespace-only) lines.
	blankLineRun = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

	// Leftover newlines after block assembly.
	newlineRun = regexp.MustCompile(`\n+`)
)

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// stripPlaceholders removes placeholder characters from untrusted input.
func stripPlaceholders(content string) string {
	return placeholderChars.ReplaceAllString(content, "")
}

// stripBlockMarkers removes the block marker from assembled output.
func stripBlockMarkers(content string) string {
	return strings.ReplaceAll(content, blockMarker, "")
}

// collapseNewlines drops every remaining newline run. Whitespace between
// block tags is not significant in a chat bubble.
func collapseNewlines(content string) string {
	return newlineRun.ReplaceAllString(content, "")
}

// ConvertBoldPlaceholders converts bold placeholder markers to <strong> tags.
// Called after the italic pass so a single-asterisk rule never splits a
// double-asterisk marker.
func ConvertBoldPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, BoldStartPlaceholder, "<strong>"),
		BoldEndPlaceholder, "</strong>",
	)
}
