// Package sanitize strips markup from free-text fields before storage.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	tagRe    = regexp.MustCompile(`<[^>]*>?`)
)

// String removes <script> blocks with their contents, strips remaining
// HTML tags and trims surrounding whitespace.
func String(input string) string {
	out := scriptRe.ReplaceAllString(input, "")
	out = tagRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// Strings sanitizes every element and drops the ones left empty.
func Strings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := String(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
