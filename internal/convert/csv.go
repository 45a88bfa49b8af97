package convert

import (
	"encoding/csv"
	"os"
	"time"
)

type csvWriter struct {
	file *os.File
	w    *csv.Writer
}

func newCSVWriter(path string) (*csvWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"occurred_at", "tag", "level", "message"}); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &csvWriter{file: f, w: w}, nil
}

func (w *csvWriter) Write(e Entry) error {
	return w.w.Write([]string{
		e.OccurredAt.Format(time.RFC3339Nano),
		e.Tag,
		string(e.Level),
		e.Message,
	})
}

func (w *csvWriter) Close() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
