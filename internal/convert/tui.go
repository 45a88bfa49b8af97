package convert

import (
	"fmt"
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BrowseModel is the bubbletea model for browsing a grouped conversion
// result: a tag list, and per-tag formatted entry lines with scrolling and
// regex search.
type BrowseModel struct {
	groups *Groups
	fmtr   Formatter
	file   string

	// tag list
	cursor int

	// entry pane (active when viewing)
	viewing   bool
	lines     []string
	scrollOff int

	// search
	searching   bool
	searchInput string
	searchRegex *regexp.Regexp
	searchIdx   int
	matches     []int

	// terminal size
	width  int
	height int

	quitting bool
}

// NewBrowseModel creates a browse TUI model over a grouped result.
func NewBrowseModel(groups *Groups, fmtr Formatter, file string) BrowseModel {
	return BrowseModel{
		groups: groups,
		fmtr:   fmtr,
		file:   file,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m BrowseModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.viewing {
			m.scrollOff = clampInt(m.scrollOff-1, 0, m.maxScroll())
		} else if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.viewing {
			m.scrollOff = clampInt(m.scrollOff+1, 0, m.maxScroll())
		} else if m.cursor < m.groups.Len()-1 {
			m.cursor++
		}

	case "pgup", "ctrl+u":
		if m.viewing {
			m.scrollOff = clampInt(m.scrollOff-m.paneHeight(), 0, m.maxScroll())
		}

	case "pgdown", "ctrl+d":
		if m.viewing {
			m.scrollOff = clampInt(m.scrollOff+m.paneHeight(), 0, m.maxScroll())
		}

	case "g":
		if m.viewing {
			m.scrollOff = 0
		} else {
			m.cursor = 0
		}

	case "G":
		if m.viewing {
			m.scrollOff = m.maxScroll()
		} else if m.groups.Len() > 0 {
			m.cursor = m.groups.Len() - 1
		}

	case "enter":
		if !m.viewing && m.groups.Len() > 0 {
			m.openTag(m.groups.Tags()[m.cursor])
		}

	case "esc":
		if m.viewing {
			m.viewing = false
			m.clearSearch()
		}

	case "/":
		if m.viewing {
			m.searching = true
			m.searchInput = ""
		}

	case "n":
		m.nextMatch(1)

	case "N":
		m.nextMatch(-1)
	}

	return m, nil
}

func (m BrowseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		re, err := regexp.Compile(m.searchInput)
		if err == nil {
			m.searchRegex = re
			m.updateSearchMatches()
			m.searchIdx = 0
			if len(m.matches) > 0 {
				m.scrollOff = clampInt(m.matches[0]-m.paneHeight()/2, 0, m.maxScroll())
			}
		}

	case "esc":
		m.searching = false
		m.clearSearch()

	case "backspace":
		if len(m.searchInput) > 0 {
			m.searchInput = m.searchInput[:len(m.searchInput)-1]
		}

	default:
		if len(msg.String()) == 1 {
			m.searchInput += msg.String()
		}
	}

	return m, nil
}

func (m *BrowseModel) openTag(tag string) {
	m.viewing = true
	m.scrollOff = 0
	m.clearSearch()

	m.lines = m.lines[:0]
	for _, e := range m.groups.Entries(tag) {
		// multi-line messages become multiple display rows
		for _, line := range strings.Split(m.fmtr.Format(e), "\n") {
			m.lines = append(m.lines, line)
		}
	}
}

func (m *BrowseModel) clearSearch() {
	m.searchInput = ""
	m.searchRegex = nil
	m.matches = nil
	m.searchIdx = 0
}

func (m *BrowseModel) updateSearchMatches() {
	m.matches = nil
	if m.searchRegex == nil {
		return
	}
	for i, line := range m.lines {
		if m.searchRegex.MatchString(line) {
			m.matches = append(m.matches, i)
		}
	}
}

func (m *BrowseModel) nextMatch(dir int) {
	if !m.viewing || len(m.matches) == 0 {
		return
	}
	m.searchIdx = (m.searchIdx + dir + len(m.matches)) % len(m.matches)
	m.scrollOff = clampInt(m.matches[m.searchIdx]-m.paneHeight()/2, 0, m.maxScroll())
}

// paneHeight is the number of content rows: header(1) + blank(1) + status(1).
func (m BrowseModel) paneHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (m BrowseModel) maxScroll() int {
	max := len(m.lines) - m.paneHeight()
	if max < 0 {
		return 0
	}
	return max
}

// View renders the browse TUI.
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("azlogconvert browse | %s | %d tags, %d entries",
		m.file, m.groups.Len(), m.groups.Total())
	b.WriteString(bHeaderStyle.Render(title))
	b.WriteString("\n\n")

	if m.viewing {
		m.viewEntries(&b)
	} else {
		m.viewTags(&b)
	}

	b.WriteString(m.statusBar())
	return b.String()
}

func (m BrowseModel) viewTags(b *strings.Builder) {
	paneH := m.paneHeight()
	tags := m.groups.Tags()

	// keep cursor visible
	top := 0
	if m.cursor >= paneH {
		top = m.cursor - paneH + 1
	}

	shown := 0
	for i := top; i < len(tags) && shown < paneH; i++ {
		tag := tags[i]
		line := fmt.Sprintf("%-30s %d entries", tag, len(m.groups.Entries(tag)))
		if len(line) > m.width {
			line = line[:m.width]
		}
		if i == m.cursor {
			b.WriteString(bSelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		shown++
	}
	for ; shown < paneH; shown++ {
		b.WriteString("\n")
	}
}

func (m BrowseModel) viewEntries(b *strings.Builder) {
	paneH := m.paneHeight()
	end := m.scrollOff + paneH
	if end > len(m.lines) {
		end = len(m.lines)
	}

	matchSet := make(map[int]bool, len(m.matches))
	for _, idx := range m.matches {
		matchSet[idx] = true
	}

	for i := m.scrollOff; i < end; i++ {
		line := m.lines[i]
		if len(line) > m.width {
			line = line[:m.width]
		}
		if matchSet[i] {
			b.WriteString(bMatchStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	for i := end - m.scrollOff; i < paneH; i++ {
		b.WriteString("\n")
	}
}

func (m BrowseModel) statusBar() string {
	if m.searching {
		return bSearchBadge.Render("/" + m.searchInput)
	}
	if m.viewing {
		var parts []string
		if m.searchRegex != nil {
			parts = append(parts, bSearchBadge.Render(fmt.Sprintf("[%d/%d] /%s",
				m.searchIdx+1, len(m.matches), m.searchRegex.String())))
		}
		parts = append(parts, bHelpStyle.Render("j/k scroll  / search  n/N match  esc back  q quit"))
		return strings.Join(parts, " ")
	}
	return bHelpStyle.Render("j/k move  enter open  q quit")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var (
	bHeaderStyle   = lipgloss.NewStyle().Bold(true)
	bSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	bMatchStyle    = lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0"))
	bSearchBadge   = lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	bHelpStyle     = lipgloss.NewStyle().Faint(true)
)
