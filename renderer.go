package chatmd

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-chatmd/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownRenderer = (*pipeline.Renderer)(nil)
	_ pipeline.HTMLConverter    = (*pipeline.GoldmarkConverter)(nil)
)

// Renderer turns chat messages into HTML. Create with NewRenderer; a
// Renderer is immutable and safe for concurrent use.
type Renderer struct {
	cfg         rendererConfig
	builtin     pipeline.MarkdownRenderer
	goldmark    pipeline.HTMLConverter
	highlighter *pipeline.Highlighter
	sanitizer   *pipeline.Sanitizer
}

// NewRenderer creates a Renderer with the built-in engine, structural block
// detection, no highlighting and no sanitization, then applies opts.
func NewRenderer(opts ...Option) (*Renderer, error) {
	cfg := rendererConfig{
		engine: EngineBuiltin,
		blocks: BlocksStructural,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	engine, err := ParseEngine(string(cfg.engine))
	if err != nil {
		return nil, err
	}
	blocks, err := ParseBlockMode(string(cfg.blocks))
	if err != nil {
		return nil, err
	}
	cfg.engine, cfg.blocks = engine, blocks

	r := &Renderer{cfg: cfg}

	if cfg.highlight != "" {
		r.highlighter, err = pipeline.NewHighlighter(cfg.highlight)
		if err != nil {
			return nil, err
		}
		cfg.highlight = strings.ToLower(cfg.highlight)
		r.cfg.highlight = cfg.highlight
	}

	switch engine {
	case EngineGoldmark:
		r.goldmark = pipeline.NewGoldmarkConverter(cfg.highlight)
	default:
		r.builtin = pipeline.NewRenderer(pipeline.RendererOptions{
			Blocks:      blocks,
			Highlighter: r.highlighter,
		})
	}

	if cfg.sanitize {
		r.sanitizer = pipeline.NewSanitizer()
	}

	return r, nil
}

// Render converts assistant Markdown to an HTML fragment. It never fails;
// if the goldmark engine errors, the text is returned escaped.
func (r *Renderer) Render(text string) string {
	out, err := r.renderMarkdown(context.Background(), text)
	if err != nil {
		return escapeText(text)
	}
	return out
}

// Convert renders one chat message. Assistant messages are Markdown; user
// messages are escaped and shown as typed. Returns ctx.Err() if ctx is
// done before rendering finishes.
func (r *Renderer) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	role, err := ParseRole(string(input.Role))
	if err != nil {
		return nil, err
	}

	var fragment string
	switch role {
	case RoleUser:
		fragment = escapeText(input.Text)
	default:
		fragment, err = r.renderMarkdown(ctx, input.Text)
		if err != nil {
			return nil, err
		}
	}

	if r.cfg.document {
		css, err := r.CSS()
		if err != nil {
			return nil, err
		}
		fragment = wrapDocument(r.cfg.title, css, fragment)
	}

	return &Result{HTML: fragment, Role: role}, nil
}

// CSS returns the style sheet for highlighted code, or "" when
// highlighting is off.
func (r *Renderer) CSS() (string, error) {
	if r.highlighter == nil {
		return "", nil
	}
	var sb strings.Builder
	if err := r.highlighter.WriteCSS(&sb); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return sb.String(), nil
}

// renderMarkdown runs the selected engine, then the sanitizer if enabled.
func (r *Renderer) renderMarkdown(ctx context.Context, text string) (string, error) {
	var out string
	if r.goldmark != nil {
		var err error
		out, err = r.goldmark.ToHTML(ctx, text)
		if err != nil {
			return "", err
		}
	} else {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		out = r.builtin.Render(text)
	}

	if r.sanitizer != nil {
		out = r.sanitizer.Sanitize(out)
	}
	return out, nil
}

// escapeText renders text literally: HTML-escaped, newlines as <br>.
func escapeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}

// defaultRenderer backs the package-level Render.
var defaultRenderer = pipeline.NewRenderer(pipeline.RendererOptions{})

// Render converts assistant Markdown to an HTML fragment with the default
// settings. Safe for concurrent use.
func Render(text string) string {
	return defaultRenderer.Render(text)
}
