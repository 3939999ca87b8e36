package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile atomically replaces the file at path with data: the content is
// written to a temporary file in the destination directory and renamed into
// place, so a crash mid-run never leaves a truncated mappings file.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".sbgen-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()

	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Chmod(tmpName, filePerm)
	}
	if werr == nil {
		werr = os.Rename(tmpName, path)
	}

	if werr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing file %s: %w", path, werr)
	}

	return nil
}
