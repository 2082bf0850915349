package pipeline

import (
	"regexp"
	"strings"
)

var (
	// "- item" or "* item", optional indentation.
	unorderedItemPattern = regexp.MustCompile(`^[ \t]*[-*][ \t]+(.+)$`)

	// "1. item", optional indentation.
	orderedItemPattern = regexp.MustCompile(`^[ \t]*[0-9]+\.[ \t]+(.+)$`)
)

// listKind is the state of the list grouping machine.
type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

func (k listKind) openTag() string {
	if k == listOrdered {
		return "<ol>"
	}
	return "<ul>"
}

func (k listKind) closeTag() string {
	if k == listOrdered {
		return "</ol>"
	}
	return "</ul>"
}

// classifyListLine reports the list kind of a line and its item content.
func classifyListLine(line string) (listKind, string) {
	if m := unorderedItemPattern.FindStringSubmatch(line); m != nil {
		return listUnordered, m[1]
	}
	if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
		return listOrdered, m[1]
	}
	return listNone, ""
}

// listAccumulator groups consecutive list lines into <ul>/<ol> elements.
// Blank lines between items of the same kind are swallowed; any other
// line closes the open list.
type listAccumulator struct {
	out     []string
	current listKind
	pending []string // blank lines seen while a list is open
}

func (a *listAccumulator) emitBlock(s string) {
	a.out = append(a.out, blockMarker+s)
}

func (a *listAccumulator) close() {
	if a.current != listNone {
		a.emitBlock(a.current.closeTag())
		a.current = listNone
	}
	a.out = append(a.out, a.pending...)
	a.pending = a.pending[:0]
}

func (a *listAccumulator) add(line string) {
	kind, item := classifyListLine(line)

	switch {
	case kind == listNone && a.current != listNone && strings.TrimSpace(line) == "":
		a.pending = append(a.pending, line)
		return
	case kind == listNone:
		a.close()
		a.out = append(a.out, line)
		return
	case kind != a.current:
		a.close()
		a.emitBlock(kind.openTag())
		a.current = kind
	default:
		a.pending = a.pending[:0]
	}

	a.emitBlock("<li>" + item + "</li>")
}

// groupLists rewrites list lines into closed <ul>/<ol> blocks.
func groupLists(content string) string {
	lines := strings.Split(content, "\n")
	acc := &listAccumulator{out: make([]string, 0, len(lines)+2)}
	for _, line := range lines {
		acc.add(line)
	}
	acc.close()
	return strings.Join(acc.out, "\n")
}
