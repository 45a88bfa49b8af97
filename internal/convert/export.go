package convert

import "fmt"

// ExportFormat identifies an export output format.
type ExportFormat string

const (
	FormatParquet ExportFormat = "parquet"
	FormatCSV     ExportFormat = "csv"
	FormatJSONL   ExportFormat = "jsonl"
)

// ExportWriter writes parsed entries to an output format.
type ExportWriter interface {
	Write(Entry) error
	Close() error
}

// Export writes the flat entry sequence to dst in the given format.
func Export(entries []Entry, dst string, format ExportFormat) error {
	w, err := newExportWriter(dst, format)
	if err != nil {
		return fmt.Errorf("create writer: %w", err)
	}

	for _, e := range entries {
		if err := w.Write(e); err != nil {
			_ = w.Close()
			return fmt.Errorf("write entry: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("close writer: %w", err)
	}
	return nil
}

func newExportWriter(path string, format ExportFormat) (ExportWriter, error) {
	switch format {
	case FormatParquet:
		return newParquetWriter(path)
	case FormatCSV:
		return newCSVWriter(path)
	case FormatJSONL:
		return newJSONLWriter(path)
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
}
