package chatmd

import "github.com/alnah/go-chatmd/internal/pipeline"

// CheckBalanced reports whether every tag in an HTML fragment is closed in
// nesting order. Void elements (br, hr) need no closing tag.
func CheckBalanced(fragment string) error {
	return pipeline.CheckBalanced(fragment)
}

// StyleNames lists the highlight styles accepted by WithHighlight.
func StyleNames() []string {
	return pipeline.StyleNames()
}
