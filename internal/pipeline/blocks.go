package pipeline

import "regexp"

// Heading patterns, most hashes first so "###" is never taken by the "#" rule.
var headingPatterns = []struct {
	pattern *regexp.Regexp
	tag     string
}{
	{regexp.MustCompile(`(?m)^###[ \t]+(.+?)[ \t]*$`), "h3"},
	{regexp.MustCompile(`(?m)^##[ \t]+(.+?)[ \t]*$`), "h2"},
	{regexp.MustCompile(`(?m)^#[ \t]+(.+?)[ \t]*$`), "h1"},
}

var (
	// One blockquote per line, no merging.
	blockquotePattern = regexp.MustCompile(`(?m)^> (.*?)[ \t]*$`)

	// A line made of exactly three dashes.
	horizontalRulePattern = regexp.MustCompile(`(?m)^---[ \t]*$`)
)

// convertHeadings transforms "# ", "## " and "### " lines to h1-h3.
func convertHeadings(content string) string {
	for _, h := range headingPatterns {
		content = h.pattern.ReplaceAllString(content, blockMarker+"<"+h.tag+">$1</"+h.tag+">")
	}
	return content
}

// convertBlockquotes transforms "> " lines to <blockquote>.
func convertBlockquotes(content string) string {
	return blockquotePattern.ReplaceAllString(content, blockMarker+"<blockquote>$1</blockquote>")
}

// convertHorizontalRules transforms "---" lines to <hr>.
func convertHorizontalRules(content string) string {
	return horizontalRulePattern.ReplaceAllString(content, blockMarker+"<hr>")
}
