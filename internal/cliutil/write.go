// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oaskit/oaspath/internal/fileutil"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// RejectSymlinkOutput returns an error if path exists and is a symlink.
func RejectSymlinkOutput(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cliutil: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("cliutil: refusing to write to symlink: %s", path)
	}
	return nil
}

// WriteOutput writes data to path, or to w when path is empty.
// Files are created with owner-only permissions.
func WriteOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("cliutil: writing output: %w", err)
		}
		return nil
	}
	cleaned := filepath.Clean(path)
	if err := RejectSymlinkOutput(cleaned); err != nil {
		return err
	}
	if err := os.WriteFile(cleaned, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("cliutil: writing %s: %w", cleaned, err)
	}
	return nil
}

// SameFile reports whether a and b resolve to the same absolute path.
func SameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return false
	}
	return absA == absB
}
