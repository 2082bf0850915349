package pipeline

import (
	"fmt"
	"strings"
)

// BlockMode selects how paragraph wrapping recognizes block-level output.
type BlockMode string

const (
	// BlocksStructural trusts the marker left by the block passes: marked
	// lines stand alone, runs of other lines become paragraphs.
	BlocksStructural BlockMode = "structural"

	// BlocksHeuristic splits on blank lines and leaves a segment unwrapped
	// when its text contains a block tag opener.
	BlocksHeuristic BlockMode = "heuristic"
)

// blockTagOpeners are the substrings the heuristic mode treats as "already HTML".
var blockTagOpeners = []string{
	"<h1", "<h2", "<h3", "<ul", "<ol", "<li", "<pre", "<blockquote", "<hr",
	blockStashOpen,
}

// ParseBlockMode converts a config or flag value to a BlockMode.
// Empty input selects BlocksStructural.
func ParseBlockMode(s string) (BlockMode, error) {
	switch BlockMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", BlocksStructural:
		return BlocksStructural, nil
	case BlocksHeuristic:
		return BlocksHeuristic, nil
	default:
		return "", fmt.Errorf("%w: %q (must be structural or heuristic)", ErrUnknownBlockMode, s)
	}
}

// wrapParagraphs wraps non-block text in <p>, joining inner lines with <br>.
func wrapParagraphs(content string, mode BlockMode) string {
	if mode == BlocksHeuristic {
		return wrapParagraphsHeuristic(stripBlockMarkers(content))
	}
	return wrapParagraphsStructural(content)
}

func wrapParagraphsHeuristic(content string) string {
	var sb strings.Builder
	for _, segment := range blankLineRun.Split(content, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if containsBlockTag(segment) {
			sb.WriteString(segment)
			continue
		}
		writeParagraph(&sb, segment)
	}
	return sb.String()
}

func containsBlockTag(segment string) bool {
	for _, opener := range blockTagOpeners {
		if strings.Contains(segment, opener) {
			return true
		}
	}
	return false
}

func wrapParagraphsStructural(content string) string {
	var sb strings.Builder
	var para []string

	flush := func() {
		text := strings.TrimSpace(strings.Join(para, "\n"))
		para = para[:0]
		if text != "" {
			writeParagraph(&sb, text)
		}
	}

	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, blockMarker):
			flush()
			sb.WriteString(strings.TrimPrefix(line, blockMarker))
		case strings.TrimSpace(line) == "":
			flush()
		default:
			para = append(para, line)
		}
	}
	flush()

	return sb.String()
}

func writeParagraph(sb *strings.Builder, text string) {
	sb.WriteString("<p>")
	sb.WriteString(strings.ReplaceAll(text, "\n", "<br>"))
	sb.WriteString("</p>")
}
