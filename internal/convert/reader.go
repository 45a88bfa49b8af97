package convert

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	tickColumn    = "eventTickCount"
	messageColumn = "message"
)

// Reader streams records from an Azure log export. Sources ending in .gz or
// .zst are decompressed transparently. The CSV must carry a header row naming
// at least the eventTickCount and message columns; other columns are ignored.
type Reader struct {
	file    *os.File
	zdec    *zstd.Decoder
	gzr     *gzip.Reader
	csv     *csv.Reader
	tickIdx int
	msgIdx  int
	row     int
}

// Open opens a source file and resolves its column layout from the header row.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r := &Reader{file: f, tickIdx: -1, msgIdx: -1}

	var src io.Reader = f
	switch {
	case strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("zstd open: %w", err)
		}
		r.zdec = dec
		src = dec
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("gzip open: %w", err)
		}
		r.gzr = gzr
		src = gzr
	}

	r.csv = csv.NewReader(src)
	r.csv.FieldsPerRecord = -1

	header, err := r.csv.Read()
	if err != nil {
		_ = r.Close()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty source, no header row", path)
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	r.row = 1

	for i, name := range header {
		switch strings.TrimSpace(name) {
		case tickColumn:
			r.tickIdx = i
		case messageColumn:
			r.msgIdx = i
		}
	}
	if r.tickIdx < 0 || r.msgIdx < 0 {
		_ = r.Close()
		return nil, fmt.Errorf("%s: header row missing %q or %q column", path, tickColumn, messageColumn)
	}

	return r, nil
}

// Read returns the next record, or io.EOF after the last row.
func (r *Reader) Read() (Record, error) {
	row, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("row %d: %w", r.row+1, err)
	}
	r.row++

	if r.tickIdx >= len(row) || r.msgIdx >= len(row) {
		return Record{}, fmt.Errorf("row %d: too few columns (%d)", r.row, len(row))
	}

	ticks, err := strconv.ParseInt(strings.TrimSpace(row[r.tickIdx]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("row %d: bad %s: %w", r.row, tickColumn, err)
	}

	return Record{Ticks: ticks, Message: row[r.msgIdx]}, nil
}

// Rows returns the number of data rows consumed so far.
func (r *Reader) Rows() int {
	return r.row - 1
}

// Close releases the decompressor (when present) and the underlying file.
func (r *Reader) Close() error {
	if r.zdec != nil {
		r.zdec.Close()
	}
	if r.gzr != nil {
		_ = r.gzr.Close()
	}
	return r.file.Close()
}

// Parse opens path and assembles all closed entries from it in input order.
// Any builder or reader error aborts with no entries.
func Parse(path string) ([]Entry, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var b Builder
	var entries []Entry
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
