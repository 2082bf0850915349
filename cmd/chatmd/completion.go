package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum    // has predefined values
	flagDynamic // values come from a chatmd subcommand
	flagFile    // file with glob pattern
	flagDir     // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	Command  string   // for dynamic flags, e.g. "styles"
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name       string
	Desc       string
	Flags      []flagDef
	TakesFiles bool     // accepts file arguments
	Args       []string // fixed positional values
}

// completionMeta holds completion-specific metadata for flags.
// This is the ONLY place where completion hints are defined.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	Command  string   // chatmd subcommand listing values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"engine": {Values: []string{"builtin", "goldmark"}},
	"blocks": {Values: []string{"structural", "heuristic"}},
	"role":   {Values: []string{"assistant", "user"}},

	// Dynamic flags
	"highlight": {Command: "styles"},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},

	// Directory flags
	"output": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.Command != "":
				fd.Type = flagDynamic
				fd.Command = meta.Command
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet - single source of truth.
func getCommands() []commandDef {
	renderDefs := extractFlagsFromFlagSet(newRenderFlagSet(&renderFlags{}))

	return []commandDef{
		{Name: "render", Desc: "Render chat markdown to HTML", Flags: renderDefs, TakesFiles: true},
		{Name: "styles", Desc: "List highlight styles or print one as CSS"},
		{Name: "config", Desc: "Print the effective configuration", Flags: []flagDef{
			{Long: "config", Short: "c", Type: flagFile, Desc: "config file name or path", FileGlob: "*.yaml,*.yml"},
		}},
		{Name: "completion", Desc: "Generate shell completion script", Args: []string{"bash", "zsh", "fish"}},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command", Args: commands},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// generateBash writes a bash completion function.
func generateBash(w io.Writer) error {
	var sb strings.Builder
	cmds := getCommands()

	sb.WriteString("# bash completion for chatmd\n")
	sb.WriteString("_chatmd() {\n")
	sb.WriteString("    local cur prev\n")
	sb.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	sb.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	sb.WriteString("    if [[ $COMP_CWORD -eq 1 ]]; then\n")
	fmt.Fprintf(&sb, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(commandNames(cmds), " "))
	sb.WriteString("        return\n")
	sb.WriteString("    fi\n\n")
	sb.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&sb, "    %s)\n", c.Name)
		if valued := valuedFlags(c.Flags); len(valued) > 0 {
			sb.WriteString("        case \"$prev\" in\n")
			for _, f := range valued {
				fmt.Fprintf(&sb, "        %s)\n            %s\n            return ;;\n", bashFlagPattern(f), bashValueReply(f))
			}
			sb.WriteString("        esac\n")
		}
		if len(c.Flags) > 0 {
			sb.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(&sb, "            COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(flagWords(c.Flags), " "))
			sb.WriteString("            return\n")
			sb.WriteString("        fi\n")
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&sb, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(c.Args, " "))
		case c.TakesFiles:
			sb.WriteString("        COMPREPLY=( $(compgen -f -- \"$cur\") )\n")
		}
		sb.WriteString("        ;;\n")
	}

	sb.WriteString("    esac\n")
	sb.WriteString("}\n")
	sb.WriteString("complete -o filenames -F _chatmd chatmd\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// generateZsh writes a zsh script that loads the bash completion through
// bashcompinit.
func generateZsh(w io.Writer) error {
	if _, err := io.WriteString(w, "#compdef chatmd\n\nautoload -U +X bashcompinit && bashcompinit\n\n"); err != nil {
		return err
	}
	return generateBash(w)
}

// generateFish writes fish completion commands.
func generateFish(w io.Writer) error {
	var sb strings.Builder
	cmds := getCommands()
	names := strings.Join(commandNames(cmds), " ")

	sb.WriteString("# fish completion for chatmd\n")
	sb.WriteString("complete -c chatmd -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&sb, "complete -c chatmd -n \"not __fish_seen_subcommand_from %s\" -a %s -d %q\n", names, c.Name, c.Desc)
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("-n \"__fish_seen_subcommand_from %s\"", c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(&sb, "complete -c chatmd %s -l %s", cond, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&sb, " -s %s", f.Short)
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&sb, " -x -a %q", strings.Join(f.Values, " "))
			case flagDynamic:
				fmt.Fprintf(&sb, " -x -a \"(chatmd %s 2>/dev/null)\"", f.Command)
			case flagFile, flagDir:
				sb.WriteString(" -r -F")
			case flagString, flagInt:
				sb.WriteString(" -x")
			}
			fmt.Fprintf(&sb, " -d %q\n", f.Desc)
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&sb, "complete -c chatmd %s -a %q\n", cond, strings.Join(c.Args, " "))
		}
		if c.TakesFiles {
			fmt.Fprintf(&sb, "complete -c chatmd %s -F\n", cond)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func commandNames(cmds []commandDef) []string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	return names
}

// flagWords lists every spelling of every flag.
func flagWords(flags []flagDef) []string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// valuedFlags returns flags whose value can be completed.
func valuedFlags(flags []flagDef) []flagDef {
	var out []flagDef
	for _, f := range flags {
		switch f.Type {
		case flagEnum, flagDynamic, flagFile, flagDir:
			out = append(out, f)
		}
	}
	return out
}

func bashFlagPattern(f flagDef) string {
	if f.Short != "" {
		return "-" + f.Short + "|--" + f.Long
	}
	return "--" + f.Long
}

func bashValueReply(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return fmt.Sprintf("COMPREPLY=( $(compgen -W %q -- \"$cur\") )", strings.Join(f.Values, " "))
	case flagDynamic:
		return fmt.Sprintf("COMPREPLY=( $(compgen -W \"$(chatmd %s 2>/dev/null)\" -- \"$cur\") )", f.Command)
	case flagDir:
		return "COMPREPLY=( $(compgen -d -- \"$cur\") )"
	default:
		globs := strings.Split(f.FileGlob, ",")
		exts := make([]string, 0, len(globs))
		for _, g := range globs {
			exts = append(exts, strings.TrimPrefix(g, "*."))
		}
		return fmt.Sprintf("COMPREPLY=( $(compgen -f -X '!*.@(%s)' -- \"$cur\") )", strings.Join(exts, "|"))
	}
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chatmd completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(chatmd completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(chatmd completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    chatmd completion fish > ~/.config/fish/completions/chatmd.fish")
}
