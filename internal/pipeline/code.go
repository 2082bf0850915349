package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var (
	// Fenced code: optional info string on the opening line, non-greedy body.
	fencedCodePattern = regexp.MustCompile("(?s)```(?:([\\w+#.-]*)\n)?(.*?)```")

	// Inline code span, single line.
	inlineCodePattern = regexp.MustCompile("`([^`\n]+)`")

	// Reference to a stashed code fragment.
	stashRefPattern = regexp.MustCompile("[" + blockStashOpen + inlineStashOpen + "]([0-9]+)" + stashClose)
)

// codeStash holds rendered code fragments out of reach of the later passes.
// Scoped to a single render call.
type codeStash struct {
	fragments []string
}

// put stores a rendered fragment and returns its placeholder reference.
func (s *codeStash) put(open, fragment string) string {
	s.fragments = append(s.fragments, fragment)
	return open + strconv.Itoa(len(s.fragments)-1) + stashClose
}

// restore replaces every placeholder reference with its stashed fragment.
func (s *codeStash) restore(content string) string {
	if len(s.fragments) == 0 {
		return content
	}
	return stashRefPattern.ReplaceAllStringFunc(content, func(ref string) string {
		m := stashRefPattern.FindStringSubmatch(ref)
		idx, err := strconv.Atoi(m[1])
		if err != nil || idx >= len(s.fragments) {
			return ""
		}
		return s.fragments[idx]
	})
}

// stashFencedCode renders ``` blocks to <pre><code> and stashes them.
// The placeholder is put on its own marked line so both paragraph modes
// treat it as block-level.
func stashFencedCode(content string, stash *codeStash, hl *Highlighter) string {
	return fencedCodePattern.ReplaceAllStringFunc(content, func(block string) string {
		m := fencedCodePattern.FindStringSubmatch(block)
		lang, code := m[1], strings.TrimSuffix(m[2], "\n")
		return "\n" + blockMarker + stash.put(blockStashOpen, renderCodeBlock(lang, code, hl)) + "\n"
	})
}

// stashInlineCode renders `span` to <code> and stashes it.
func stashInlineCode(content string, stash *codeStash) string {
	return inlineCodePattern.ReplaceAllStringFunc(content, func(span string) string {
		m := inlineCodePattern.FindStringSubmatch(span)
		return stash.put(inlineStashOpen, "<code>"+html.EscapeString(m[1])+"</code>")
	})
}

// renderCodeBlock builds the <pre><code> element, highlighted when possible.
func renderCodeBlock(lang, code string, hl *Highlighter) string {
	var sb strings.Builder
	sb.WriteString("<pre><code")
	if lang != "" {
		sb.WriteString(` class="language-`)
		sb.WriteString(html.EscapeString(lang))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")

	highlighted, ok := "", false
	if hl != nil && lang != "" {
		highlighted, ok = hl.Highlight(lang, code)
	}
	if ok {
		sb.WriteString(highlighted)
	} else {
		sb.WriteString(html.EscapeString(code))
	}

	sb.WriteString("</code></pre>")
	return sb.String()
}
