// Package chatmd renders AI chat replies from Markdown to HTML.
//
// # Quick Start
//
// For the common case, call Render:
//
//	html := chatmd.Render("**Done.** See `main.go`.")
//	// <p><strong>Done.</strong> See <code>main.go</code>.</p>
//
// Render never fails. Malformed or unsupported markup degrades to literal
// text, and the output is always a fragment of balanced tags.
//
// # Supported Markdown
//
// The built-in engine covers what chat models actually emit: fenced and
// inline code, # to ### headings, bold, italic, links (opening in a new
// tab), "> " blockquotes, "---" rules, and "-", "*" or "1." lists. Runs of
// plain lines become paragraphs with <br> line breaks.
//
// Code content is escaped and never sees another pass. Other text is not
// escaped; pass WithSanitize when the host page does not sanitize.
//
// # Configuration
//
// Use functional options to customize a Renderer:
//
//	r, err := chatmd.NewRenderer(
//	    chatmd.WithHighlight("github"),
//	    chatmd.WithSanitize(true),
//	)
//
// WithEngine(EngineGoldmark) swaps the pass pipeline for a CommonMark + GFM
// parser. WithBlockMode(BlocksHeuristic) restores substring-based block
// detection. WithDocument wraps Convert output in an HTML5 page.
//
// # Messages
//
// Convert renders one chat message. Assistant messages are Markdown; user
// messages are escaped and kept as typed:
//
//	res, err := r.Convert(ctx, chatmd.Input{Text: msg, Role: chatmd.RoleUser})
//
// A Renderer holds no per-call state and is safe for concurrent use.
package chatmd
