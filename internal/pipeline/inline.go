package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// Bold: **text** or __text__, single line.
	boldStarPattern       = regexp.MustCompile(`\*\*([^\n]+?)\*\*`)
	boldUnderscorePattern = regexp.MustCompile(`__([^\n]+?)__`)

	// Italic: *text*, no whitespace just inside the delimiters, never across
	// a bold placeholder.
	italicStarPattern = regexp.MustCompile(`\*([^*\s\x{E000}\x{E001}](?:[^*\n\x{E000}\x{E001}]*[^*\s\x{E000}\x{E001}])?)\*`)

	// Italic: _text_, same body rules. Word boundaries are checked in code.
	italicUnderscorePattern = regexp.MustCompile(`_([^_\s\x{E000}\x{E001}](?:[^_\n\x{E000}\x{E001}]*[^_\s\x{E000}\x{E001}])?)_`)

	// Link: [label](url). The URL may not carry quotes or angle brackets.
	linkPattern = regexp.MustCompile(`\[([^\]\n]+)\]\(([^)\s<>"]+)\)`)
)

// convertEmphasis resolves bold and italic in three steps: bold to
// placeholders, italic to <em>, placeholders to <strong>. "**a*b*c**"
// yields <strong>a<em>b</em>c</strong>.
func convertEmphasis(content string) string {
	content = markBold(content)
	content = convertItalics(content)
	return ConvertBoldPlaceholders(content)
}

// markBold wraps bold spans in placeholder markers.
func markBold(content string) string {
	replacement := BoldStartPlaceholder + "$1" + BoldEndPlaceholder
	content = boldStarPattern.ReplaceAllString(content, replacement)
	return boldUnderscorePattern.ReplaceAllString(content, replacement)
}

// convertItalics transforms *text* and _text_ to <em>.
func convertItalics(content string) string {
	content = italicStarPattern.ReplaceAllString(content, "<em>$1</em>")
	return convertUnderscoreItalics(content)
}

// convertUnderscoreItalics handles _text_ only at word boundaries, so
// snake_case identifiers and URLs pass through.
func convertUnderscoreItalics(content string) string {
	matches := italicUnderscorePattern.FindAllStringSubmatchIndex(content, -1)
	if matches == nil {
		return content
	}

	var sb strings.Builder
	sb.Grow(len(content))
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if isWordRuneBefore(content, start) || isWordRuneAfter(content, end) {
			continue
		}
		sb.WriteString(content[last:start])
		sb.WriteString("<em>")
		sb.WriteString(content[m[2]:m[3]])
		sb.WriteString("</em>")
		last = end
	}
	sb.WriteString(content[last:])
	return sb.String()
}

func isWordRuneBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isWordRune(r)
}

func isWordRuneAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// convertLinks transforms [label](url) to an anchor opening in a new tab.
func convertLinks(content string) string {
	return linkPattern.ReplaceAllString(content, `<a href="$2" target="_blank">$1</a>`)
}
