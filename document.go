package chatmd

import (
	"fmt"

	"golang.org/x/net/html"
)

// documentTemplate wraps a rendered fragment in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
%s</head>
<body>
%s
</body>
</html>`

// defaultDocumentTitle is used when WithDocument is given an empty title.
const defaultDocumentTitle = "Chat"

// wrapDocument builds a standalone document around fragment.
func wrapDocument(title, css, fragment string) string {
	if title == "" {
		title = defaultDocumentTitle
	}
	style := ""
	if css != "" {
		style = "<style>\n" + css + "</style>\n"
	}
	return fmt.Sprintf(documentTemplate, html.EscapeString(title), style, fragment)
}
