package convert

import "testing"

func TestMatchHeaderLevels(t *testing.T) {
	tests := []struct {
		msg   string
		level Level
		tag   string
	}{
		{"info: Boot", LevelInfo, "Boot"},
		{"warn: Worker.Startup", LevelWarn, "Worker.Startup"},
		{"fail: Db[1].Connect", LevelFail, "Db[1].Connect"},
		{"info: ", LevelInfo, ""},
	}
	for _, tt := range tests {
		h, ok := MatchHeader(tt.msg)
		if !ok {
			t.Errorf("MatchHeader(%q) = no match, want level %s", tt.msg, tt.level)
			continue
		}
		if h.Level != tt.level || h.Tag != tt.tag {
			t.Errorf("MatchHeader(%q) = {%s %q}, want {%s %q}", tt.msg, h.Level, h.Tag, tt.level, tt.tag)
		}
	}
}

func TestMatchHeaderContinuation(t *testing.T) {
	continuations := []string{
		"",
		"Started ok",
		"info:missing space",
		"information: Boot", // prefix must be exact
		"INFO: Boot",        // case sensitive
		" info: Boot",       // no leading whitespace allowed
		"debug: Boot",       // unknown level
	}
	for _, msg := range continuations {
		if _, ok := MatchHeader(msg); ok {
			t.Errorf("MatchHeader(%q) matched, want continuation", msg)
		}
	}
}
