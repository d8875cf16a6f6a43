package rendering

import "strings"

// EscapeMarkdown escapes characters that Markdown would treat as inline formatting or table syntax.
// Escaped characters: \ ` * _ [ ] | < >
func EscapeMarkdown(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '\\', '`', '*', '_', '[', ']', '|', '<', '>':
			result.WriteRune('\\')
			result.WriteRune(r)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
