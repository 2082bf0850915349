// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strconv"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-chatmd/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-chatmd/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for unknown highlight styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + " (see 'chatmd styles')")
}

// ForUnbalanced returns hints for output that failed the structure check.
func ForUnbalanced() string {
	return formatHints([]string{
		"try --blocks structural",
		"or --engine goldmark for full CommonMark",
	})
}

// ForInputTooLarge returns hints for oversized input.
func ForInputTooLarge(limit int) string {
	return format("split the input; the limit is " + humanBytes(limit))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

func humanBytes(n int) string {
	const mb = 1 << 20
	if n >= mb && n%mb == 0 {
		return strconv.Itoa(n/mb) + "MB"
	}
	return strconv.Itoa(n) + " bytes"
}
