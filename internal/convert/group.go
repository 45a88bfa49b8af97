package convert

// Groups partitions closed entries by tag, remembering the order tags were
// first seen so output is deterministic without sorting by name.
type Groups struct {
	tags  []string
	byTag map[string][]Entry
}

// Group appends each entry to its tag's list, creating groups lazily on
// first sight. Arrival order is preserved within each group.
func Group(entries []Entry) *Groups {
	g := &Groups{byTag: make(map[string][]Entry)}
	for _, e := range entries {
		if _, ok := g.byTag[e.Tag]; !ok {
			g.tags = append(g.tags, e.Tag)
		}
		g.byTag[e.Tag] = append(g.byTag[e.Tag], e)
	}
	return g
}

// Tags returns the tag names in first-seen order.
func (g *Groups) Tags() []string {
	return g.tags
}

// Entries returns the entries for one tag in arrival order.
func (g *Groups) Entries(tag string) []Entry {
	return g.byTag[tag]
}

// Len returns the number of distinct tags.
func (g *Groups) Len() int {
	return len(g.tags)
}

// Total returns the number of entries across all tags.
func (g *Groups) Total() int {
	n := 0
	for _, entries := range g.byTag {
		n += len(entries)
	}
	return n
}
