package pipeline

// MarkdownRenderer defines the contract for chat-reply rendering.
type MarkdownRenderer interface {
	Render(text string) string
}

// Renderer converts assistant replies to an HTML fragment through a fixed
// sequence of passes. It holds no per-call state and is safe for
// concurrent use.
type Renderer struct {
	blocks      BlockMode
	highlighter *Highlighter
}

// RendererOptions configures a Renderer.
type RendererOptions struct {
	Blocks      BlockMode    // empty = BlocksStructural
	Highlighter *Highlighter // nil = plain escaped code blocks
}

// NewRenderer creates a Renderer.
func NewRenderer(opts RendererOptions) *Renderer {
	blocks := opts.Blocks
	if blocks == "" {
		blocks = BlocksStructural
	}
	return &Renderer{blocks: blocks, highlighter: opts.Highlighter}
}

// Render converts text to HTML. It never fails: malformed markup degrades
// to literal text.
//
// Order matters. Code is stashed first so no later pass sees it; bold is
// marked before italic and only finalized after it; lists are grouped
// before paragraphs are wrapped.
func (r *Renderer) Render(text string) string {
	stash := &codeStash{}

	content := normalizeLineEndings(text)
	content = stripPlaceholders(content)
	content = stashFencedCode(content, stash, r.highlighter)
	content = stashInlineCode(content, stash)
	content = convertHeadings(content)
	content = convertBlockquotes(content)
	content = convertHorizontalRules(content)
	content = convertEmphasis(content)
	content = convertLinks(content)
	content = groupLists(content)
	content = wrapParagraphs(content, r.blocks)
	content = stripBlockMarkers(content)
	content = collapseNewlines(content)
	return stash.restore(content)
}
