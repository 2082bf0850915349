package chatmd

import (
	"fmt"
	"strings"

	"github.com/alnah/go-chatmd/internal/pipeline"
)

// Engine selects the Markdown implementation.
type Engine string

// Engine constants.
const (
	EngineBuiltin  Engine = "builtin"  // pass pipeline tuned for chat replies
	EngineGoldmark Engine = "goldmark" // CommonMark + GFM reference engine
)

// ParseEngine converts a config or flag value to an Engine.
// Empty input selects EngineBuiltin.
func ParseEngine(s string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(s))) {
	case "", EngineBuiltin:
		return EngineBuiltin, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	default:
		return "", fmt.Errorf("%w: %q (must be builtin or goldmark)", ErrUnknownEngine, s)
	}
}

// BlockMode selects how the built-in engine decides which output is
// already block-level HTML.
type BlockMode = pipeline.BlockMode

// Block mode constants.
const (
	BlocksStructural = pipeline.BlocksStructural
	BlocksHeuristic  = pipeline.BlocksHeuristic
)

// ParseBlockMode converts a config or flag value to a BlockMode.
func ParseBlockMode(s string) (BlockMode, error) {
	return pipeline.ParseBlockMode(s)
}

// Role identifies who authored a chat message.
type Role string

// Role constants.
const (
	RoleAssistant Role = "assistant" // rendered as Markdown
	RoleUser      Role = "user"      // shown as literal text
)

// ParseRole converts a flag value to a Role. Empty input selects RoleAssistant.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoleAssistant:
		return RoleAssistant, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("%w: %q (must be assistant or user)", ErrUnknownRole, s)
	}
}

// Input contains one chat message to render.
type Input struct {
	Text string // Message body
	Role Role   // Empty = RoleAssistant
}

// Result contains the rendered message.
type Result struct {
	HTML string // Fragment, or a full document with WithDocument
	Role Role
}

// Option configures a Renderer.
type Option func(*rendererConfig)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	engine    Engine
	blocks    BlockMode
	sanitize  bool
	highlight string // chroma style name, empty = off
	document  bool
	title     string
}

// WithEngine selects the Markdown engine.
func WithEngine(e Engine) Option {
	return func(c *rendererConfig) {
		c.engine = e
	}
}

// WithBlockMode selects block detection for the built-in engine.
func WithBlockMode(m BlockMode) Option {
	return func(c *rendererConfig) {
		c.blocks = m
	}
}

// WithSanitize filters output down to the renderer's own tag subset.
// Use it when the host page inserts replies without its own sanitizer.
func WithSanitize(enabled bool) Option {
	return func(c *rendererConfig) {
		c.sanitize = enabled
	}
}

// WithHighlight highlights fenced code with the named chroma style.
// An empty name disables highlighting.
func WithHighlight(style string) Option {
	return func(c *rendererConfig) {
		c.highlight = style
	}
}

// WithDocument makes Convert return a standalone HTML5 document with the
// given title instead of a fragment.
func WithDocument(title string) Option {
	return func(c *rendererConfig) {
		c.document = true
		c.title = title
	}
}
