package convert

import (
	"fmt"
	"strings"
	"time"
)

// OrphanContinuationError reports a continuation line that appeared before
// any header opened an entry. The input is malformed; the run aborts.
type OrphanContinuationError struct {
	Line string
}

func (e *OrphanContinuationError) Error() string {
	return fmt.Sprintf("continuation line %q without an open entry", e.Line)
}

// EmptyEntryError reports an entry that closed with zero accumulated message
// lines (its header was immediately followed by another header or by EOF).
type EmptyEntryError struct {
	Tag        string
	OccurredAt time.Time
}

func (e *EmptyEntryError) Error() string {
	return fmt.Sprintf("entry %s at %s has no messages", e.Tag, e.OccurredAt.Format(time.RFC3339))
}

// openEntry accumulates lines between a header and the record that closes it.
type openEntry struct {
	level      Level
	tag        string
	occurredAt time.Time
	messages   []string
}

func (o *openEntry) close() (Entry, error) {
	if len(o.messages) == 0 {
		return Entry{}, &EmptyEntryError{Tag: o.tag, OccurredAt: o.occurredAt}
	}
	return Entry{
		OccurredAt: o.occurredAt,
		Tag:        o.tag,
		Level:      o.level,
		Message:    strings.TrimSpace(strings.Join(o.messages, "\n")),
	}, nil
}

// Builder assembles closed entries from records in input order. At most one
// entry is open at a time: a header record closes the previous entry and
// opens the next, a non-header record appends to the open one. The zero
// value is ready to use.
type Builder struct {
	open *openEntry
}

// Feed processes one record. When rec opens a new entry, the previously open
// entry (if any) is closed and returned.
func (b *Builder) Feed(rec Record) (*Entry, error) {
	header, ok := MatchHeader(rec.Message)
	if !ok {
		if b.open == nil {
			return nil, &OrphanContinuationError{Line: rec.Message}
		}
		b.open.messages = append(b.open.messages, rec.Message)
		return nil, nil
	}

	var closed *Entry
	if b.open != nil {
		entry, err := b.open.close()
		if err != nil {
			return nil, err
		}
		closed = &entry
	}

	b.open = &openEntry{
		level:      header.Level,
		tag:        NormalizeTag(header.Tag),
		occurredAt: ToInstant(rec.Ticks),
	}
	return closed, nil
}

// Flush closes the open entry at end of input. Returns nil when no entry is
// open (an empty source yields zero entries).
func (b *Builder) Flush() (*Entry, error) {
	if b.open == nil {
		return nil, nil
	}
	entry, err := b.open.close()
	if err != nil {
		return nil, err
	}
	b.open = nil
	return &entry, nil
}

// Build drains records through a Builder and returns the closed entries in
// input order. On any error no entries are returned.
func Build(records []Record) ([]Entry, error) {
	var b Builder
	var entries []Entry
	for _, rec := range records {
		closed, err := b.Feed(rec)
		if err != nil {
			return nil, err
		}
		if closed != nil {
			entries = append(entries, *closed)
		}
	}
	closed, err := b.Flush()
	if err != nil {
		return nil, err
	}
	if closed != nil {
		entries = append(entries, *closed)
	}
	return entries, nil
}
