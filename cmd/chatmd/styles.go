package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chatmd "github.com/alnah/go-chatmd"
	"github.com/alnah/go-chatmd/internal/hints"
)

// runStyles lists highlight styles, or prints the CSS for one style.
func runStyles(args []string, env *Environment) error {
	switch len(args) {
	case 0:
		for _, name := range chatmd.StyleNames() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	case 1:
		if args[0] == "-h" || args[0] == "--help" {
			printStylesUsage(env.Stdout)
			return nil
		}
		return writeStyleCSS(env.Stdout, args[0])
	default:
		return fmt.Errorf("%w: styles takes at most one style name", ErrInvalidArgs)
	}
}

// writeStyleCSS writes the style sheet for the named highlight style.
func writeStyleCSS(w io.Writer, name string) error {
	r, err := chatmd.NewRenderer(chatmd.WithHighlight(name))
	if errors.Is(err, chatmd.ErrUnknownStyle) {
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(closestStyles(name)))
	}
	if err != nil {
		return err
	}

	css, err := r.CSS()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, css)
	return err
}

// closestStyles returns styles sharing a prefix with name, falling back to
// the full list.
func closestStyles(name string) []string {
	all := chatmd.StyleNames()
	prefix := strings.ToLower(name)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	var matches []string
	for _, s := range all {
		if strings.HasPrefix(s, prefix) {
			matches = append(matches, s)
		}
	}
	if len(matches) == 0 {
		return all
	}
	return matches
}
