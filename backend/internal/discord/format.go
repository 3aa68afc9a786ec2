package discord

import (
	"strings"
	"unicode/utf8"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"|", `\|`,
	">", `\>`,
)

// EscapeMarkdown keeps catalog text from being read as Discord markdown
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

// FormatInlineCode formats inline code for Discord
func FormatInlineCode(code string) string {
	return "`" + strings.ReplaceAll(code, "`", "'") + "`"
}

// FormatBold formats text as bold in Discord
func FormatBold(text string) string {
	return "**" + text + "**"
}

// FormatLink renders a masked link, or plain text when url is empty
func FormatLink(text, url string) string {
	if url == "" {
		return text
	}
	return "[" + text + "](" + url + ")"
}

// Truncate shortens s to at most max runes, marking the cut with "…"
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
