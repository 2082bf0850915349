// Package pipeline implements the chat-reply Markdown-to-HTML pipeline.
//
// The built-in Renderer is a fixed chain of text passes:
//   - Line ending normalization
//   - Fenced code blocks and inline code spans (stashed behind placeholders)
//   - Headings, blockquotes and horizontal rules
//   - Bold and italic emphasis (bold held in placeholders while italic runs)
//   - Links
//   - List grouping (a small state machine over lines)
//   - Paragraph wrapping and newline cleanup
//
// Supporting pieces live alongside it: a chroma Highlighter for fenced code,
// a goldmark reference converter, a bluemonday Sanitizer limited to the
// renderer's tag subset, and CheckBalanced for verifying output structure.
package pipeline
