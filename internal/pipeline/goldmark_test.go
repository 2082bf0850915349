package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		style       string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "heading and emphasis",
			input:    "# Fern\n\n**shade** and *humidity*",
			contains: []string{"<h1>Fern</h1>", "<strong>shade</strong>", "<em>humidity</em>"},
		},
		{
			name:     "links open in new tab",
			input:    "[guide](https://example.com)",
			contains: []string{`href="https://example.com"`, `target="_blank"`},
		},
		{
			name:     "hard wraps",
			input:    "a\nb",
			contains: []string{"<br"},
		},
		{
			name:        "raw html omitted",
			input:       "<script>alert(1)</script>",
			notContains: []string{"<script>"},
		},
		{
			name:     "highlighted code",
			style:    "github",
			input:    "```go\nfunc main() {}\n```",
			contains: []string{"chroma"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewGoldmarkConverter(tt.style).ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() = %q, missing %q", got, want)
				}
			}
			for _, bad := range tt.notContains {
				if strings.Contains(got, bad) {
					t.Errorf("ToHTML() = %q, should not contain %q", got, bad)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter("").ToHTML(ctx, "# x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
