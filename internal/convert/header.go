package convert

import "strings"

// MatchHeader classifies a raw message. If it starts with a level prefix
// ("info: ", "warn: ", "fail: ") it marks the start of a new entry and the
// remainder is returned as the raw tag source. Anything else is a
// continuation line of the currently open entry.
func MatchHeader(msg string) (Header, bool) {
	for _, level := range levels {
		prefix := string(level) + ": "
		if !strings.HasPrefix(msg, prefix) {
			continue
		}
		return Header{Level: level, Tag: msg[len(prefix):]}, true
	}
	return Header{}, false
}
