package main

// Notes:
// - runRender: we test end-to-end rendering through runMain with temp
//   directories: stdin to stdout, stdin to file, single file, directory
//   mirror, document output, and config-driven defaults.
// - readInput: we test the size limit.
// - Tests that run through config discovery change directory and are not parallel.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	chatmd "github.com/alnah/go-chatmd"
)

// ---------------------------------------------------------------------------
// TestRender_Stdin - Standard input rendering
// ---------------------------------------------------------------------------

func TestRender_Stdin(t *testing.T) {
	t.Parallel()

	t.Run("to stdout", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := newTestEnv("Use `go test` and *relax*.")
		if code := runMain([]string{"chatmd", "render", "-"}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
		}
		want := "<p>Use <code>go test</code> and <em>relax</em>.</p>\n"
		if stdout.String() != want {
			t.Errorf("stdout = %q, want %q", stdout.String(), want)
		}
	})

	t.Run("to file", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "nested", "reply.html")
		env, stdout, stderr := newTestEnv("> quoted")
		if code := runMain([]string{"chatmd", "render", "-o", out}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
		}
		if got := readTestFile(t, out); got != "<blockquote>quoted</blockquote>" {
			t.Errorf("output = %q", got)
		}
		if !strings.Contains(stdout.String(), "Created "+out) {
			t.Errorf("stdout = %q, want Created line", stdout.String())
		}
	})

	t.Run("quiet to file", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "reply.html")
		env, stdout, _ := newTestEnv("hi")
		if code := runMain([]string{"chatmd", "render", "-q", "-o", out}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d", code)
		}
		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", stdout.String())
		}
	})

	t.Run("document", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := newTestEnv("hi")
		if code := runMain([]string{"chatmd", "render", "--title", "Support <chat>", "--check"}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
		}
		for _, want := range []string{"<!DOCTYPE html>", "<title>Support &lt;chat&gt;</title>", "<p>hi</p>"} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("stdout = %q, want to contain %q", stdout.String(), want)
			}
		}
	})

	t.Run("goldmark engine", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := newTestEnv("[site](https://example.com)")
		if code := runMain([]string{"chatmd", "render", "--engine", "goldmark"}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
		}
		if !strings.Contains(stdout.String(), `target="_blank"`) {
			t.Errorf("stdout = %q, want link opening in a new tab", stdout.String())
		}
	})

	t.Run("sanitize", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := newTestEnv(`<script>alert(1)</script>**ok**`)
		if code := runMain([]string{"chatmd", "render", "--sanitize"}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
		}
		if strings.Contains(stdout.String(), "<script>") {
			t.Errorf("stdout = %q, script should be removed", stdout.String())
		}
		if !strings.Contains(stdout.String(), "<strong>ok</strong>") {
			t.Errorf("stdout = %q, want bold kept", stdout.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRender_Files - File and directory rendering
// ---------------------------------------------------------------------------

func TestRender_Files(t *testing.T) {
	t.Parallel()

	t.Run("directory to output directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "replies")
		out := filepath.Join(dir, "html")
		writeTestFile(t, filepath.Join(in, "first.md"), "## Setup")
		writeTestFile(t, filepath.Join(in, "later", "second.md"), "1. one\n2. two")

		env, stdout, stderr := newTestEnv("")
		if code := runMain([]string{"chatmd", "render", in, "-o", out, "-w", "2"}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
		}

		if got := readTestFile(t, filepath.Join(out, "first.html")); got != "<h2>Setup</h2>" {
			t.Errorf("first.html = %q", got)
		}
		if got := readTestFile(t, filepath.Join(out, "later", "second.html")); got != "<ol><li>one</li><li>two</li></ol>" {
			t.Errorf("second.html = %q", got)
		}
		if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
			t.Errorf("stdout = %q, want summary", stdout.String())
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := newTestEnv("")
		if code := runMain([]string{"chatmd", "render", t.TempDir()}, env); code != ExitIO {
			t.Errorf("runMain() = %d, want %d", code, ExitIO)
		}
		if !strings.Contains(stderr.String(), "no input files found") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()

		in := filepath.Join(t.TempDir(), "reply.pdf")
		writeTestFile(t, in, "hi")

		env, _, _ := newTestEnv("")
		if code := runMain([]string{"chatmd", "render", in}, env); code != ExitUsage {
			t.Errorf("runMain() = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("user role file", func(t *testing.T) {
		t.Parallel()

		in := filepath.Join(t.TempDir(), "question.txt")
		writeTestFile(t, in, "why <T>?\nthanks")

		env, _, stderr := newTestEnv("")
		if code := runMain([]string{"chatmd", "render", in, "--role", "user"}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
		}
		got := readTestFile(t, strings.TrimSuffix(in, ".txt")+".html")
		if got != "why &lt;T&gt;?<br>thanks" {
			t.Errorf("output = %q", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRender_ConfigFile - Config-driven defaults
// ---------------------------------------------------------------------------

func TestRender_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeTestFile(t, filepath.Join(dir, "team.yaml"), strings.Join([]string{
		"input:",
		"  defaultDir: replies",
		"output:",
		"  defaultDir: site",
		"document:",
		"  enabled: true",
		"  title: Team chat",
		"",
	}, "\n"))
	writeTestFile(t, filepath.Join(dir, "replies", "a.md"), "hello")

	env, _, stderr := newTestEnv("")
	if code := runMain([]string{"chatmd", "render", "-c", "team"}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
	}

	got := readTestFile(t, filepath.Join(dir, "site", "a.html"))
	if !strings.Contains(got, "<title>Team chat</title>") || !strings.Contains(got, "<p>hello</p>") {
		t.Errorf("a.html = %q", got)
	}
}

func TestRender_ConfigNotFound(t *testing.T) {
	t.Chdir(t.TempDir())

	env, _, stderr := newTestEnv("hi")
	if code := runMain([]string{"chatmd", "render", "-c", "missing"}, env); code != ExitUsage {
		t.Errorf("runMain() = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "hint: use --config") {
		t.Errorf("stderr = %q, want config hint", stderr.String())
	}
}

// ---------------------------------------------------------------------------
// TestReadInput - Size limit
// ---------------------------------------------------------------------------

func TestReadInput(t *testing.T) {
	t.Parallel()

	t.Run("within limit", func(t *testing.T) {
		t.Parallel()

		got, err := readInput(strings.NewReader("hello"))
		if err != nil || got != "hello" {
			t.Errorf("readInput() = %q, %v", got, err)
		}
	})

	t.Run("over limit", func(t *testing.T) {
		t.Parallel()

		_, err := readInput(strings.NewReader(strings.Repeat("x", maxInputSize+1)))
		if !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("readInput() error = %v, want ErrInputTooLarge", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRenderMessage - Conversion plus structure check
// ---------------------------------------------------------------------------

func TestRenderMessage(t *testing.T) {
	t.Parallel()

	r, err := chatmd.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	tests := []struct {
		name    string
		text    string
		opts    renderOptions
		want    string
		wantErr bool
	}{
		{
			name: "assistant",
			text: "---",
			opts: renderOptions{role: chatmd.RoleAssistant},
			want: "<hr>",
		},
		{
			name: "balanced with check",
			text: "# A\n- b",
			opts: renderOptions{role: chatmd.RoleAssistant, check: true},
			want: "<h1>A</h1><ul><li>b</li></ul>",
		},
		{
			name:    "unbalanced with check",
			text:    "<span>open",
			opts:    renderOptions{role: chatmd.RoleAssistant, check: true},
			wantErr: true,
		},
		{
			name: "unbalanced without check",
			text: "<span>open",
			opts: renderOptions{role: chatmd.RoleAssistant},
			want: "<p><span>open</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := renderMessage(context.Background(), r, tt.text, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("renderMessage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("renderMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
