// Package files reads tracked files into memory for prompt assembly.
package files

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// BinaryPlaceholder replaces the content of files that do not decode as text.
const BinaryPlaceholder = "[Binary file]"

// TrackedFile pairs a repository-relative path with its textual content, or
// with a placeholder when the file could not be read as text.
type TrackedFile struct {
	Path    string
	Content string
}

// ReadContent reads one tracked file relative to root. It never fails: a
// binary file yields BinaryPlaceholder, any other read error yields a
// placeholder embedding the error, and the caller keeps going. Safe for
// concurrent use; it touches no shared state.
func ReadContent(root, relPath string) TrackedFile {
	data, err := os.ReadFile(filepath.Join(root, relPath))
	if err != nil {
		logrus.Warnf("Error reading %s: %v", relPath, err)
		return TrackedFile{Path: relPath, Content: fmt.Sprintf("[Error reading file: %v]", err)}
	}
	if isBinary(data) {
		return TrackedFile{Path: relPath, Content: BinaryPlaceholder}
	}
	return TrackedFile{Path: relPath, Content: string(data)}
}

// isBinary reports whether data should be treated as non-text. A NUL byte or
// invalid UTF-8 disqualifies the file.
func isBinary(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}
	return !utf8.Valid(data)
}
