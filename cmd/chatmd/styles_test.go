package main

import (
	"errors"
	"strings"
	"testing"

	chatmd "github.com/alnah/go-chatmd"
)

// ---------------------------------------------------------------------------
// TestRunStyles - Style listing and CSS output
// ---------------------------------------------------------------------------

func TestRunStyles(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv("")
		if err := runStyles(nil, env); err != nil {
			t.Fatalf("runStyles() error = %v", err)
		}
		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		if len(lines) != len(chatmd.StyleNames()) {
			t.Errorf("listed %d styles, want %d", len(lines), len(chatmd.StyleNames()))
		}
	})

	t.Run("css", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv("")
		if err := runStyles([]string{"Monokai"}, env); err != nil {
			t.Fatalf("runStyles() error = %v", err)
		}
		if !strings.Contains(stdout.String(), ".chroma") {
			t.Errorf("stdout = %q, want chroma rules", stdout.String())
		}
	})

	t.Run("unknown style suggests close names", func(t *testing.T) {
		t.Parallel()

		env, _, _ := newTestEnv("")
		err := runStyles([]string{"monokay"}, env)
		if !errors.Is(err, chatmd.ErrUnknownStyle) {
			t.Fatalf("runStyles() error = %v, want ErrUnknownStyle", err)
		}
		if !strings.Contains(err.Error(), "monokai") {
			t.Errorf("error = %q, want monokai suggestion", err.Error())
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv("")
		if err := runStyles([]string{"--help"}, env); err != nil {
			t.Fatalf("runStyles() error = %v", err)
		}
		if !strings.Contains(stdout.String(), "Usage: chatmd styles") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("too many arguments", func(t *testing.T) {
		t.Parallel()

		env, _, _ := newTestEnv("")
		if err := runStyles([]string{"a", "b"}, env); !errors.Is(err, ErrInvalidArgs) {
			t.Errorf("runStyles() error = %v, want ErrInvalidArgs", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestClosestStyles - Suggestion filtering
// ---------------------------------------------------------------------------

func TestClosestStyles(t *testing.T) {
	t.Parallel()

	got := closestStyles("DRACULAA")
	for _, s := range got {
		if !strings.HasPrefix(s, "dra") {
			t.Errorf("closestStyles() returned %q without prefix dra", s)
		}
	}
	if len(got) == 0 {
		t.Error("closestStyles() returned nothing for dracula typo")
	}

	if all := closestStyles("zzzz"); len(all) != len(chatmd.StyleNames()) {
		t.Errorf("closestStyles(no match) = %d names, want all %d", len(all), len(chatmd.StyleNames()))
	}
}
