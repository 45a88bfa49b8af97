package convert

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func browseModel() BrowseModel {
	at := time.Date(2023, 5, 15, 10, 30, 0, 0, time.UTC)
	groups := Group([]Entry{
		{OccurredAt: at, Tag: "Boot", Level: LevelInfo, Message: "Started ok"},
		{OccurredAt: at.Add(time.Second), Tag: "Worker", Level: LevelWarn, Message: "Retrying"},
		{OccurredAt: at.Add(2 * time.Second), Tag: "Boot", Level: LevelFail, Message: "Crashed"},
	})
	return NewBrowseModel(groups, NewFormatter(time.UTC), "app.csv")
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowseQuit(t *testing.T) {
	m := browseModel()
	updated, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("want tea.Quit command")
	}
	if v := updated.(BrowseModel).View(); v != "" {
		t.Errorf("quitting view = %q, want empty", v)
	}
}

func TestBrowseTagListView(t *testing.T) {
	m := browseModel()
	view := m.View()
	for _, want := range []string{"Boot", "Worker", "2 tags, 3 entries"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestBrowseOpenTag(t *testing.T) {
	m := browseModel()

	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(BrowseModel)
	if !m.viewing {
		t.Fatal("enter should open the selected tag")
	}

	view := m.View()
	if !strings.Contains(view, "Started ok") || !strings.Contains(view, "Crashed") {
		t.Errorf("entry view missing Boot entries:\n%s", view)
	}
	if strings.Contains(view, "Retrying") {
		t.Errorf("entry view leaked Worker entries:\n%s", view)
	}

	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(BrowseModel)
	if m.viewing {
		t.Error("esc should return to the tag list")
	}
}

func TestBrowseCursorMovement(t *testing.T) {
	m := browseModel()

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(BrowseModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	// clamped at the end of the list
	updated, _ = m.Update(keyMsg("j"))
	m = updated.(BrowseModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(BrowseModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestBrowseSearch(t *testing.T) {
	m := browseModel()

	updated, _ := m.Update(keyMsg("enter")) // open Boot
	m = updated.(BrowseModel)

	updated, _ = m.Update(keyMsg("/"))
	m = updated.(BrowseModel)
	if !m.searching {
		t.Fatal("/ should start search input")
	}

	for _, r := range "Crash" {
		updated, _ = m.Update(keyMsg(string(r)))
		m = updated.(BrowseModel)
	}
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(BrowseModel)

	if m.searching {
		t.Error("enter should finish search input")
	}
	if len(m.matches) != 1 {
		t.Errorf("got %d matches, want 1", len(m.matches))
	}
}
