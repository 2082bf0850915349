package pipeline

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// classNames matches class attribute values the renderer and chroma emit.
var classNames = regexp.MustCompile(`^[\w -]+$`)

// Sanitizer filters rendered HTML down to the renderer's own tag subset.
// Safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer allowing h1-h3, p, strong, em, code,
// pre, blockquote, hr, ul, ol, li, a, br and chroma's span classes.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"h1", "h2", "h3", "p", "strong", "em", "code", "pre",
		"blockquote", "hr", "ul", "ol", "li", "br", "span",
	)
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("class").Matching(classNames).OnElements("code", "pre", "span")
	return &Sanitizer{policy: p}
}

// Sanitize returns content with everything outside the policy removed.
func (s *Sanitizer) Sanitize(content string) string {
	return s.policy.Sanitize(content)
}
