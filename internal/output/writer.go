// Package output manages the generated document and its backup copy.
package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Backup copies the current document at outputPath to backupPath,
// overwriting any prior backup. A missing document is fine; there is nothing
// to protect yet. A failed copy must abort the run before generation starts,
// so the caller never overwrites the only surviving copy.
func Backup(outputPath, backupPath string) error {
	src, err := os.Open(outputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", outputPath, err)
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", backupPath, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("copy to %s: %w", backupPath, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close %s: %w", backupPath, err)
	}
	return nil
}

// Write replaces the document at outputPath with content. Only called after
// generation succeeded; a failed generation leaves the prior document alone.
func Write(outputPath, content string) error {
	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}
