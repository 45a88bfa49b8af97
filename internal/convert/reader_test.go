package convert

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const sampleCSV = `timestamp,eventTickCount,level,message
2023-05-15T10:00:00Z,100,Informational,info: Boot
2023-05-15T10:00:01Z,200,Informational,Started ok
2023-05-15T10:00:02Z,300,Warning,warn: Boot
2023-05-15T10:00:03Z,400,Warning,Retrying
`

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readAll(t *testing.T, r *Reader) []Record {
	t.Helper()
	var records []Record
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records
		}
		if err != nil {
			t.Fatal(err)
		}
		records = append(records, rec)
	}
}

func TestReaderPlainCSV(t *testing.T) {
	path := writeSource(t, "app.csv", sampleCSV)

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = r.Close() }()

	records := readAll(t, r)
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	if records[0].Ticks != 100 || records[0].Message != "info: Boot" {
		t.Errorf("records[0] = %+v", records[0])
	}
	if records[3].Ticks != 400 || records[3].Message != "Retrying" {
		t.Errorf("records[3] = %+v", records[3])
	}
	if r.Rows() != 4 {
		t.Errorf("Rows() = %d, want 4", r.Rows())
	}
}

func TestReaderQuotedMessage(t *testing.T) {
	csv := "eventTickCount,message\n" +
		"100,\"info: Boot\"\n" +
		"200,\"commas, inside, message\"\n"
	path := writeSource(t, "app.csv", csv)

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = r.Close() }()

	records := readAll(t, r)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].Message != "commas, inside, message" {
		t.Errorf("records[1].Message = %q", records[1].Message)
	}
}

func TestReaderGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.csv.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(sampleCSV)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = r.Close() }()

	records := readAll(t, r)
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
}

func TestReaderZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.csv.zst")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write([]byte(sampleCSV)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = r.Close() }()

	records := readAll(t, r)
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
}

func TestReaderMissingColumn(t *testing.T) {
	path := writeSource(t, "app.csv", "timestamp,message\nx,y\n")

	_, err := Open(path)
	if err == nil {
		t.Fatal("want error for missing eventTickCount column")
	}
	if !strings.Contains(err.Error(), "eventTickCount") {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestReaderBadTicks(t *testing.T) {
	path := writeSource(t, "app.csv", "eventTickCount,message\nnot-a-number,info: Boot\n")

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = r.Close() }()

	_, err = r.Read()
	if err == nil {
		t.Fatal("want error for non-integer ticks")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("error %q does not name the row", err)
	}
}

func TestReaderEmptyFile(t *testing.T) {
	path := writeSource(t, "app.csv", "")

	_, err := Open(path)
	if err == nil {
		t.Fatal("want error for empty source")
	}
}

func TestParseEndToEnd(t *testing.T) {
	path := writeSource(t, "app.csv", sampleCSV)

	entries, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Message != "Started ok" || entries[1].Message != "Retrying" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestParseHeaderOnlyRows(t *testing.T) {
	csv := "eventTickCount,message\n" +
		"100,info: A\n" +
		"200,info: B\n"
	path := writeSource(t, "app.csv", csv)

	_, err := Parse(path)
	var empty *EmptyEntryError
	if !errors.As(err, &empty) {
		t.Fatalf("got %v, want EmptyEntryError", err)
	}
}

func TestParseNoRecords(t *testing.T) {
	path := writeSource(t, "app.csv", "eventTickCount,message\n")

	entries, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}
