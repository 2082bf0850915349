package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-chatmd/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // CHATMD_CONFIG: config file name or path
	InputDir   string // CHATMD_INPUT_DIR: default input directory
	OutputDir  string // CHATMD_OUTPUT_DIR: default output directory
	Role       string // CHATMD_ROLE: assistant, user
	Engine     string // CHATMD_ENGINE: builtin, goldmark
	Blocks     string // CHATMD_BLOCKS: structural, heuristic
	Highlight  string // CHATMD_HIGHLIGHT: chroma style name
	Sanitize   *bool  // CHATMD_SANITIZE: true/false (nil = unset)
	Workers    int    // CHATMD_WORKERS: parallel workers
}

// knownEnvVars lists valid CHATMD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CHATMD_CONFIG":     true,
	"CHATMD_INPUT_DIR":  true,
	"CHATMD_OUTPUT_DIR": true,
	"CHATMD_ROLE":       true,
	"CHATMD_ENGINE":     true,
	"CHATMD_BLOCKS":     true,
	"CHATMD_HIGHLIGHT":  true,
	"CHATMD_SANITIZE":   true,
	"CHATMD_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable numeric or boolean values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CHATMD_CONFIG"),
		InputDir:   os.Getenv("CHATMD_INPUT_DIR"),
		OutputDir:  os.Getenv("CHATMD_OUTPUT_DIR"),
		Role:       os.Getenv("CHATMD_ROLE"),
		Engine:     os.Getenv("CHATMD_ENGINE"),
		Blocks:     os.Getenv("CHATMD_BLOCKS"),
		Highlight:  os.Getenv("CHATMD_HIGHLIGHT"),
	}

	if v := os.Getenv("CHATMD_SANITIZE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Sanitize = &b
		}
	}

	if workers := os.Getenv("CHATMD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CHATMD_* variables.
// Helps catch typos like CHATMD_STYLE instead of CHATMD_HIGHLIGHT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "CHATMD_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment variables over config file values.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Role != "" {
		cfg.Input.Role = env.Role
	}
	if env.Engine != "" {
		cfg.Render.Engine = env.Engine
	}
	if env.Blocks != "" {
		cfg.Render.Blocks = env.Blocks
	}
	if env.Highlight != "" {
		cfg.Render.Highlight = env.Highlight
	}
	if env.Sanitize != nil {
		cfg.Render.Sanitize = *env.Sanitize
	}
}
