package pipeline

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// voidElements never take a closing tag. The renderer only emits br and
// hr; the rest show up in goldmark output and document wrappers.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// CheckBalanced tokenizes an HTML fragment and reports the first tag that
// is closed out of order or never closed.
func CheckBalanced(fragment string) error {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var stack []string

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return err
			}
			if len(stack) > 0 {
				return fmt.Errorf("%w: <%s>", ErrUnclosedTag, stack[len(stack)-1])
			}
			return nil

		case html.StartTagToken:
			name, _ := z.TagName()
			if !voidElements[string(name)] {
				stack = append(stack, string(name))
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(name) {
				return fmt.Errorf("%w: </%s>", ErrMismatchedTag, name)
			}
			stack = stack[:len(stack)-1]
		}
	}
}
