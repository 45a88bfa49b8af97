package convert

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir derives the output directory for a source file: same parent,
// source name plus suffix.
func DefaultDir(srcPath, suffix string) string {
	return filepath.Join(filepath.Dir(srcPath), filepath.Base(srcPath)+suffix)
}

// WriteDir writes one <tag>.txt file per group into dir, one formatted line
// per entry. The directory is created here, after the grouped result is
// fully materialized, so a failed parse never leaves partial output behind.
func WriteDir(groups *Groups, dir string, f Formatter) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, tag := range groups.Tags() {
		path := filepath.Join(dir, tag+".txt")
		if err := writeTagFile(path, groups.Entries(tag), f); err != nil {
			return fmt.Errorf("write %s: %w", tag, err)
		}
	}
	return nil
}

func writeTagFile(path string, entries []Entry, f Formatter) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(file)
	for _, e := range entries {
		if _, err := w.WriteString(f.Format(e) + "\n"); err != nil {
			_ = file.Close()
			return err
		}
	}

	if err := w.Flush(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
