package convert

import (
	"regexp"
	"strings"
)

// bracketMarker matches per-instance markers like "[3]" that Azure embeds in
// tag names (one digit between literal brackets).
var bracketMarker = regexp.MustCompile(`\[\d]`)

// NormalizeTag canonicalizes a raw tag source into a stable grouping key that
// is safe to use as a file stem: instance markers removed, dots swapped for
// underscores, surrounding whitespace trimmed. Idempotent.
func NormalizeTag(source string) string {
	s := bracketMarker.ReplaceAllString(source, "")
	s = strings.ReplaceAll(s, ".", "_")
	return strings.TrimSpace(s)
}
