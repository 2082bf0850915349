package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	chatmd "github.com/alnah/go-chatmd"
	"github.com/alnah/go-chatmd/internal/config"
	"github.com/alnah/go-chatmd/internal/fileutil"
	"github.com/alnah/go-chatmd/internal/hints"
)

// Sentinel errors for render operations.
var (
	ErrNoInput       = errors.New("no input files found")
	ErrReadInput     = errors.New("failed to read input")
	ErrWriteOutput   = errors.New("failed to write output")
	ErrInputTooLarge = errors.New("input exceeds maximum size")
)

// maxInputSize bounds one message. Chat replies are far smaller.
const maxInputSize = 16 << 20

// stdinArg selects standard input explicitly.
const stdinArg = "-"

// MessageRenderer is the interface for the rendering service.
type MessageRenderer interface {
	Convert(ctx context.Context, input chatmd.Input) (*chatmd.Result, error)
}

// Compile-time interface implementation check.
var _ MessageRenderer = (*chatmd.Renderer)(nil)

// renderOptions holds per-message settings shared across a run.
type renderOptions struct {
	role  chatmd.Role
	check bool
}

// runRender orchestrates the render command.
func runRender(ctx context.Context, positionalArgs []string, flags *renderFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	cfg, err := loadConfig(configName)
	if err != nil {
		return err
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	renderer, err := buildRenderer(cfg)
	if err != nil {
		return err
	}

	role, err := chatmd.ParseRole(cfg.Input.Role)
	if err != nil {
		return err
	}
	opts := renderOptions{role: role, check: cfg.Render.Check}

	outputDir := resolveOutputDir(flags.output, cfg)
	inputPath := resolveInputPath(positionalArgs, cfg)
	if inputPath == "" || inputPath == stdinArg {
		return renderStdin(ctx, renderer, flags.output, opts, flags.common.quiet, env)
	}

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoInput, inputPath)
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Rendering %d file(s) with %d worker(s)\n", len(files), workers)
	}

	results := renderBatch(ctx, renderer, files, workers, opts)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d render(s) failed: %w", failedCount, firstError(results))
	}

	return nil
}

// loadConfig loads the named config, or defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over config values (CLI wins).
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	if flags.role != "" {
		cfg.Input.Role = flags.role
	}
	if flags.style.engine != "" {
		cfg.Render.Engine = flags.style.engine
	}
	if flags.style.blocks != "" {
		cfg.Render.Blocks = flags.style.blocks
	}
	if flags.style.highlight != "" {
		cfg.Render.Highlight = flags.style.highlight
	}
	if flags.style.sanitize {
		cfg.Render.Sanitize = true
	}
	if flags.style.check {
		cfg.Render.Check = true
	}
	if flags.document.enabled {
		cfg.Document.Enabled = true
	}
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
}

// buildRenderer creates the shared renderer from the merged config.
func buildRenderer(cfg *config.Config) (*chatmd.Renderer, error) {
	engine, err := chatmd.ParseEngine(cfg.Render.Engine)
	if err != nil {
		return nil, err
	}
	blocks, err := chatmd.ParseBlockMode(cfg.Render.Blocks)
	if err != nil {
		return nil, err
	}

	opts := []chatmd.Option{
		chatmd.WithEngine(engine),
		chatmd.WithBlockMode(blocks),
		chatmd.WithSanitize(cfg.Render.Sanitize),
		chatmd.WithHighlight(cfg.Render.Highlight),
	}
	if cfg.Document.Enabled {
		opts = append(opts, chatmd.WithDocument(cfg.Document.Title))
	}

	r, err := chatmd.NewRenderer(opts...)
	if errors.Is(err, chatmd.ErrUnknownStyle) {
		return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(chatmd.StyleNames()))
	}
	return r, err
}

// resolveInputPath returns the input argument, the configured default
// directory, or "" for standard input.
func resolveInputPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Input.DefaultDir
}

// resolveOutputDir returns the output directory (flag > config).
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// renderStdin renders standard input to standard output, or to outputPath
// when one is given.
func renderStdin(ctx context.Context, r MessageRenderer, outputPath string, opts renderOptions, quiet bool, env *Environment) error {
	text, err := readInput(env.Stdin)
	if err != nil {
		return err
	}

	html, err := renderMessage(ctx, r, text, opts)
	if err != nil {
		return err
	}

	if outputPath == "" {
		if _, err := io.WriteString(env.Stdout, html+"\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating output directory: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := fileutil.WriteFileAtomic(outputPath, []byte(html), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}
	return nil
}

// readInput reads at most maxInputSize bytes from r.
func readInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxInputSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if len(data) > maxInputSize {
		return "", fmt.Errorf("%w%s", ErrInputTooLarge, hints.ForInputTooLarge(maxInputSize))
	}
	return string(data), nil
}

// renderMessage converts one message and runs the structure check if asked.
func renderMessage(ctx context.Context, r MessageRenderer, text string, opts renderOptions) (string, error) {
	res, err := r.Convert(ctx, chatmd.Input{Text: text, Role: opts.role})
	if err != nil {
		return "", err
	}
	if opts.check {
		if err := chatmd.CheckBalanced(res.HTML); err != nil {
			return "", fmt.Errorf("checking output: %w%s", err, hints.ForUnbalanced())
		}
	}
	return res.HTML, nil
}
