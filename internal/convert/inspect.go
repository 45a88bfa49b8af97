package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"time"
)

// Summary holds aggregated information about one source file.
type Summary struct {
	File     string       `json:"file"`
	Records  int          `json:"records"`
	Entries  int          `json:"entries"`
	Tags     []TagCount   `json:"tags,omitempty"`
	Levels   []LevelCount `json:"levels,omitempty"`
	First    time.Time    `json:"first,omitempty"`
	Last     time.Time    `json:"last,omitempty"`
	Timeline []Bucket     `json:"timeline,omitempty"`
}

// TagCount summarizes one tag's contribution.
type TagCount struct {
	Tag     string `json:"tag"`
	Entries int    `json:"entries"`
}

// LevelCount summarizes one level's contribution.
type LevelCount struct {
	Level   Level `json:"level"`
	Entries int   `json:"entries"`
}

// Bucket represents a 1-minute timeline bucket.
type Bucket struct {
	Time    time.Time `json:"time"`
	Entries int       `json:"entries"`
}

// Inspect parses a source file and aggregates entry statistics.
func Inspect(path string) (*Summary, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var b Builder
	s := &Summary{File: path}
	tagAcc := make(map[string]int)
	levelAcc := make(map[Level]int)
	buckets := make(map[int64]int)

	account := func(e Entry) {
		s.Entries++
		tagAcc[e.Tag]++
		levelAcc[e.Level]++
		buckets[e.OccurredAt.Truncate(time.Minute).Unix()]++
		if s.First.IsZero() || e.OccurredAt.Before(s.First) {
			s.First = e.OccurredAt
		}
		if e.OccurredAt.After(s.Last) {
			s.Last = e.OccurredAt
		}
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		closed, err := b.Feed(rec)
		if err != nil {
			return nil, err
		}
		if closed != nil {
			account(*closed)
		}
	}
	closed, err := b.Flush()
	if err != nil {
		return nil, err
	}
	if closed != nil {
		account(*closed)
	}
	s.Records = r.Rows()

	s.Tags = sortedTagCounts(tagAcc)
	for _, level := range levels {
		if n := levelAcc[level]; n > 0 {
			s.Levels = append(s.Levels, LevelCount{Level: level, Entries: n})
		}
	}
	s.Timeline = buildTimeline(buckets)

	return s, nil
}

func sortedTagCounts(acc map[string]int) []TagCount {
	if len(acc) == 0 {
		return nil
	}
	tags := make([]TagCount, 0, len(acc))
	for tag, n := range acc {
		tags = append(tags, TagCount{Tag: tag, Entries: n})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Entries != tags[j].Entries {
			return tags[i].Entries > tags[j].Entries
		}
		return tags[i].Tag < tags[j].Tag
	})
	return tags
}

// buildTimeline expands sparse minute buckets into a continuous series.
func buildTimeline(buckets map[int64]int) []Bucket {
	if len(buckets) == 0 {
		return nil
	}

	var minKey, maxKey int64
	first := true
	for k := range buckets {
		if first || k < minKey {
			minKey = k
		}
		if first || k > maxKey {
			maxKey = k
		}
		first = false
	}

	n := int((maxKey-minKey)/60) + 1
	if n > 10080 { // cap at 1 week of minutes
		n = 10080
	}

	timeline := make([]Bucket, n)
	for i := range timeline {
		key := minKey + int64(i)*60
		timeline[i].Time = time.Unix(key, 0).UTC()
		timeline[i].Entries = buckets[key]
	}
	return timeline
}

// textWriter wraps an io.Writer and captures the first error.
type textWriter struct {
	w   io.Writer
	err error
}

func (tw *textWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *textWriter) println(args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintln(tw.w, args...)
}

// WriteText renders the summary as human-readable text.
func (s *Summary) WriteText(w io.Writer) {
	tw := &textWriter{w: w}

	tw.printf("Source:  %s\n", s.File)
	tw.printf("Records: %s\n", formatCount(s.Records))
	tw.printf("Entries: %s\n", formatCount(s.Entries))

	if !s.First.IsZero() {
		start := s.First.Format("2006-01-02 15:04:05")
		stop := s.Last.Format("15:04:05")
		tw.printf("Period:  %s — %s (%s)\n", start, stop, formatHumanDuration(s.Last.Sub(s.First)))
	}

	if len(s.Levels) > 0 {
		tw.println()
		tw.println("Levels:")
		for _, lc := range s.Levels {
			pct := float64(0)
			if s.Entries > 0 {
				pct = float64(lc.Entries) / float64(s.Entries) * 100
			}
			tw.printf("  %-6s %s entries   (%.1f%%)\n", lc.Level, formatCount(lc.Entries), pct)
		}
	}

	if len(s.Tags) > 0 {
		tw.println()
		tw.println("Tags:")
		for _, tc := range s.Tags {
			pct := float64(0)
			if s.Entries > 0 {
				pct = float64(tc.Entries) / float64(s.Entries) * 100
			}
			tw.printf("  %-30s %s entries   (%.1f%%)\n", tc.Tag, formatCount(tc.Entries), pct)
		}
	}

	if len(s.Timeline) > 0 {
		tw.println()
		tw.println("Timeline (1-min buckets):")
		writeSparkline(tw, s.Timeline)
	}
}

// WriteJSON renders the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// writeSparkline renders timeline buckets as a sparkline chart.
func writeSparkline(tw *textWriter, buckets []Bucket) {
	maxEntries := 0
	for _, b := range buckets {
		if b.Entries > maxEntries {
			maxEntries = b.Entries
		}
	}

	charsPerRow := 30
	for i := 0; i < len(buckets); i += charsPerRow {
		end := i + charsPerRow
		if end > len(buckets) {
			end = len(buckets)
		}

		tw.printf("  %s ", buckets[i].Time.Format("15:04"))
		for j := i; j < end; j++ {
			if maxEntries == 0 {
				tw.printf("%s", string(sparkBlocks[0]))
				continue
			}
			ratio := float64(buckets[j].Entries) / float64(maxEntries)
			idx := int(math.Round(ratio * float64(len(sparkBlocks)-1)))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(sparkBlocks) {
				idx = len(sparkBlocks) - 1
			}
			tw.printf("%s", string(sparkBlocks[idx]))
		}
		tw.println()
	}
}

// formatCount formats counts with comma separators.
func formatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

// formatHumanDuration formats a duration as "Xh Ym" or "Xm Ys".
func formatHumanDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, sec)
	}
	return fmt.Sprintf("%ds", sec)
}
