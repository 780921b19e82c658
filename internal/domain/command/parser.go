package command

import (
	"strings"
)

// Parsed is the split form of one chat message.
type Parsed struct {
	// Keyword is the lower-cased first token.
	Keyword string
	// Args is everything after the first space, case preserved.
	Args string
}

// Tokens splits Args on whitespace.
func (p Parsed) Tokens() []string {
	return strings.Fields(p.Args)
}

// Parse splits a message into keyword and arguments. Empty or
// whitespace-only input yields ok=false.
func Parse(text string) (Parsed, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Parsed{}, false
	}

	keyword, args, _ := strings.Cut(trimmed, " ")

	return Parsed{
		Keyword: strings.ToLower(keyword),
		Args:    strings.TrimSpace(args),
	}, true
}

// Unquote returns the content of the first non-empty double-quoted substring
// of s, or s unchanged when there is none. `"Rumah Budi"` becomes Rumah Budi.
func Unquote(s string) string {
	start := strings.IndexByte(s, '"')
	if start < 0 {
		return s
	}

	end := strings.IndexByte(s[start+1:], '"')
	if end <= 0 {
		return s
	}

	return s[start+1 : start+1+end]
}
