package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// styleFlags holds rendering flags.
type styleFlags struct {
	engine    string
	blocks    string
	highlight string
	sanitize  bool
	check     bool
}

// documentFlags holds standalone document flags.
type documentFlags struct {
	enabled bool
	title   string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common   commonFlags
	output   string
	workers  int
	role     string
	style    styleFlags
	document documentFlags
}

// configFlags holds flags for the config command.
type configFlags struct {
	config string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addStyleFlags adds rendering flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.engine, "engine", "", "markdown engine: builtin, goldmark")
	fs.StringVar(&f.blocks, "blocks", "", "block detection: structural, heuristic")
	fs.StringVar(&f.highlight, "highlight", "", "highlight fenced code with a chroma style")
	fs.BoolVar(&f.sanitize, "sanitize", false, "filter output to the renderer's tag subset")
	fs.BoolVar(&f.check, "check", false, "fail when output tags are unbalanced")
}

// addDocumentFlags adds standalone document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVar(&f.enabled, "document", false, "wrap output in a full HTML5 document")
	fs.StringVar(&f.title, "title", "", "document title (implies --document)")
}

// newRenderFlagSet registers every render flag on a new FlagSet.
// Shared by parseRenderFlags and completion generation.
func newRenderFlagSet(f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.role, "role", "", "message author: assistant, user")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addDocumentFlags(fs, &f.document)

	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newRenderFlagSet(f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if f.document.title != "" {
		f.document.enabled = true
	}

	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string) (*configFlags, error) {
	f := &configFlags{}
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
