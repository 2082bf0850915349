package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chatmd <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render       Render chat markdown to HTML")
	fmt.Fprintln(w, "  styles       List highlight styles or print one as CSS")
	fmt.Fprintln(w, "  config       Print the effective configuration")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "'chatmd <file.md>' and 'chatmd -' are shorthand for render.")
	fmt.Fprintln(w, "Run 'chatmd help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chatmd render [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render chat markdown to an HTML fragment.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    .md, .markdown or .txt file, or a directory")
	fmt.Fprintln(w, "           Omitted or '-': read stdin, write stdout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --role <s>            Message author: assistant, user")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --engine <s>          Engine: builtin, goldmark")
	fmt.Fprintln(w, "      --blocks <s>          Block detection: structural, heuristic")
	fmt.Fprintln(w, "      --highlight <style>   Highlight fenced code (see 'chatmd styles')")
	fmt.Fprintln(w, "      --sanitize            Filter output to the renderer's tag subset")
	fmt.Fprintln(w, "      --check               Fail when output tags are unbalanced")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --document            Wrap output in a full HTML5 document")
	fmt.Fprintln(w, "      --title <s>           Document title (implies --document)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CHATMD_CONFIG, CHATMD_INPUT_DIR, CHATMD_OUTPUT_DIR, CHATMD_ROLE,")
	fmt.Fprintln(w, "  CHATMD_ENGINE, CHATMD_BLOCKS, CHATMD_HIGHLIGHT, CHATMD_SANITIZE,")
	fmt.Fprintln(w, "  CHATMD_WORKERS override the config file; flags override both.")
}

// printStylesUsage prints usage for the styles command.
func printStylesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chatmd styles [style]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without arguments, list highlight style names.")
	fmt.Fprintln(w, "With a style name, print its CSS for pages embedding highlighted code.")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chatmd config [-c name]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration render would use, as YAML,")
	fmt.Fprintln(w, "after the config file and CHATMD_* variables are applied.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "styles":
		printStylesUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: chatmd version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: chatmd help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
