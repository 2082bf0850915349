package pipeline

import "testing"

func TestClassifyListLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		wantKind listKind
		wantItem string
	}{
		{"- a", listUnordered, "a"},
		{"* a", listUnordered, "a"},
		{"   - indented", listUnordered, "indented"},
		{"\t* tab", listUnordered, "tab"},
		{"1. one", listOrdered, "one"},
		{"42. answer", listOrdered, "answer"},
		{"  3. indented", listOrdered, "indented"},
		{"-a", listNone, ""},
		{"1.a", listNone, ""},
		{"- ", listNone, ""},
		{"text - not a list", listNone, ""},
		{"", listNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			kind, item := classifyListLine(tt.line)
			if kind != tt.wantKind || item != tt.wantItem {
				t.Errorf("classifyListLine(%q) = (%v, %q), want (%v, %q)",
					tt.line, kind, item, tt.wantKind, tt.wantItem)
			}
		})
	}
}

func TestGroupLists(t *testing.T) {
	t.Parallel()

	m := blockMarker
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no lists",
			input:    "a\nb",
			expected: "a\nb",
		},
		{
			name:     "single unordered list",
			input:    "- a\n- b",
			expected: m + "<ul>\n" + m + "<li>a</li>\n" + m + "<li>b</li>\n" + m + "</ul>",
		},
		{
			name:     "kind switch",
			input:    "- a\n1. b",
			expected: m + "<ul>\n" + m + "<li>a</li>\n" + m + "</ul>\n" + m + "<ol>\n" + m + "<li>b</li>\n" + m + "</ol>",
		},
		{
			name:     "blank lines inside same-kind list swallowed",
			input:    "1. a\n\n\n2. b",
			expected: m + "<ol>\n" + m + "<li>a</li>\n" + m + "<li>b</li>\n" + m + "</ol>",
		},
		{
			name:     "blank lines kept after list closes",
			input:    "- a\n\ntext",
			expected: m + "<ul>\n" + m + "<li>a</li>\n" + m + "</ul>\n\ntext",
		},
		{
			name:     "trailing blank lines kept after close",
			input:    "- a\n",
			expected: m + "<ul>\n" + m + "<li>a</li>\n" + m + "</ul>\n",
		},
		{
			name:     "text line closes list",
			input:    "- a\ntext\n- b",
			expected: m + "<ul>\n" + m + "<li>a</li>\n" + m + "</ul>\ntext\n" + m + "<ul>\n" + m + "<li>b</li>\n" + m + "</ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := groupLists(tt.input); got != tt.expected {
				t.Errorf("groupLists(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
