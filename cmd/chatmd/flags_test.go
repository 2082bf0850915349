package main

// Notes:
// - parseRenderFlags: we test short and long forms, positional passthrough,
//   --title implying --document, and unknown flags.
// - parseConfigFlags: we test the single flag and help.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseRenderFlags - Render flag parsing
// ---------------------------------------------------------------------------

func TestParseRenderFlags(t *testing.T) {
	t.Parallel()

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		args := []string{
			"-o", "out", "-w", "3", "--role", "user",
			"-c", "team", "-q", "-v",
			"--engine", "goldmark", "--blocks", "heuristic",
			"--highlight", "monokai", "--sanitize", "--check",
			"--document", "reply.md",
		}
		f, positional, err := parseRenderFlags(args)
		if err != nil {
			t.Fatalf("parseRenderFlags() error = %v", err)
		}

		if f.output != "out" || f.workers != 3 || f.role != "user" {
			t.Errorf("I/O flags = %q, %d, %q", f.output, f.workers, f.role)
		}
		if f.common.config != "team" || !f.common.quiet || !f.common.verbose {
			t.Errorf("common flags = %+v", f.common)
		}
		want := styleFlags{engine: "goldmark", blocks: "heuristic", highlight: "monokai", sanitize: true, check: true}
		if f.style != want {
			t.Errorf("style flags = %+v, want %+v", f.style, want)
		}
		if !f.document.enabled {
			t.Error("document.enabled = false, want true")
		}
		if len(positional) != 1 || positional[0] != "reply.md" {
			t.Errorf("positional = %v, want [reply.md]", positional)
		}
	})

	t.Run("title implies document", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseRenderFlags([]string{"--title", "Support chat"})
		if err != nil {
			t.Fatalf("parseRenderFlags() error = %v", err)
		}
		if !f.document.enabled || f.document.title != "Support chat" {
			t.Errorf("document = %+v", f.document)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		f, positional, err := parseRenderFlags(nil)
		if err != nil {
			t.Fatalf("parseRenderFlags() error = %v", err)
		}
		if f.workers != 0 || f.document.enabled || f.style.sanitize {
			t.Errorf("unexpected defaults: %+v", f)
		}
		if len(positional) != 0 {
			t.Errorf("positional = %v, want none", positional)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		if _, _, err := parseRenderFlags([]string{"--margin", "1"}); err == nil {
			t.Error("parseRenderFlags() error = nil, want error")
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseRenderFlags([]string{"-h"})
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("parseRenderFlags(-h) error = %v, want flag.ErrHelp", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestParseConfigFlags - Config command flag parsing
// ---------------------------------------------------------------------------

func TestParseConfigFlags(t *testing.T) {
	t.Parallel()

	f, err := parseConfigFlags([]string{"--config", "team"})
	if err != nil {
		t.Fatalf("parseConfigFlags() error = %v", err)
	}
	if f.config != "team" {
		t.Errorf("config = %q, want team", f.config)
	}

	if _, err := parseConfigFlags([]string{"--help"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("parseConfigFlags(--help) error = %v, want flag.ErrHelp", err)
	}
}
