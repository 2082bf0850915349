package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains []string
		excludes []string
	}{
		{
			name:     "suggests user config path",
			paths:    []string{"chat.yaml", "chat.yml", "/home/u/.config/go-chatmd/chat.yaml"},
			contains: []string{"hint:", "--config", "or create /home/u/.config/go-chatmd/chat.yaml"},
		},
		{
			name:     "windows separators",
			paths:    []string{`C:\Users\u\AppData\go-chatmd\chat.yaml`},
			contains: []string{`or create C:\Users\u\AppData\go-chatmd\chat.yaml`},
		},
		{
			name:     "no user path",
			paths:    []string{"chat.yaml"},
			contains: []string{"--config"},
			excludes: []string{"or create"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			for _, want := range tt.contains {
				if !strings.Contains(hint, want) {
					t.Errorf("hint %q missing %q", hint, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(hint, bad) {
					t.Errorf("hint %q should not contain %q", hint, bad)
				}
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}

	hint := ForStyleNotFound([]string{"github", "monokai"})
	if !strings.Contains(hint, "available: github, monokai") {
		t.Errorf("hint = %q, want style list", hint)
	}
}

func TestForUnbalanced(t *testing.T) {
	t.Parallel()

	hint := ForUnbalanced()
	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint should start with hint prefix, got %q", hint)
	}
	if !strings.Contains(hint, "; ") {
		t.Errorf("multiple hints should be joined with '; ', got %q", hint)
	}
}

func TestForInputTooLarge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		limit int
		want  string
	}{
		{16 << 20, "16MB"},
		{1000, "1000 bytes"},
	}

	for _, tt := range tests {
		if got := ForInputTooLarge(tt.limit); !strings.Contains(got, tt.want) {
			t.Errorf("ForInputTooLarge(%d) = %q, want containing %q", tt.limit, got, tt.want)
		}
	}
}

func TestForOutputDirectory(t *testing.T) {
	t.Parallel()

	if !strings.Contains(ForOutputDirectory(), "writable") {
		t.Errorf("unexpected hint: %q", ForOutputDirectory())
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
}
