package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrInvalidArgs is returned for wrong positional arguments.
var ErrInvalidArgs = errors.New("invalid arguments")

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, env))
}

// commands lists the subcommand names runMain dispatches.
var commands = []string{"render", "styles", "config", "completion", "version", "help"}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return slices.Contains(commands, arg)
}

// hasVerboseFlag scans raw arguments for -v/--verbose before flags are parsed.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// runMain dispatches a command and returns the process exit code.
// A first argument that is a markdown file, "-" or a flag is shorthand
// for "render".
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch {
	case cmd == "-h" || cmd == "--help":
		cmd = "help"
	case !isCommand(cmd) && (looksLikeMarkdown(cmd) || cmd == "-" || len(cmd) > 1 && cmd[0] == '-'):
		cmd, rest = "render", args[1:]
	}

	switch cmd {
	case "render":
		return runRenderCmd(rest, env)
	case "styles":
		return reportError(runStyles(rest, env), env)
	case "config":
		return runConfigCmd(rest, env)
	case "completion":
		return reportError(runCompletion(rest, env), env)
	case "version":
		fmt.Fprintf(env.Stdout, "chatmd %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// runRenderCmd parses render flags and runs the render command.
func runRenderCmd(args []string, env *Environment) int {
	flags, positional, err := parseRenderFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printRenderUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		return usageError(err, "render", env.Stderr)
	}
	if len(positional) > 1 {
		return usageError(fmt.Errorf("expected at most one input, got %d", len(positional)), "render", env.Stderr)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return reportError(runRender(ctx, positional, flags, env), env)
}

// runConfigCmd prints the effective configuration.
func runConfigCmd(args []string, env *Environment) int {
	flags, err := parseConfigFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printConfigUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		return usageError(err, "config", env.Stderr)
	}
	return reportError(runConfig(flags, env), env)
}

// reportError prints err, if any, and maps it to an exit code.
func reportError(err error, env *Environment) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return exitCodeFor(err)
}

// usageError prints a flag or argument error with a pointer to help.
func usageError(err error, command string, w io.Writer) int {
	fmt.Fprintf(w, "error: %v\n", err)
	fmt.Fprintf(w, "Run 'chatmd help %s' for usage.\n", command)
	return ExitUsage
}
