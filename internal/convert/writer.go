// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/body-convert/pkg/types"
)

// BatchFileName returns the name of batch index for the given format,
// e.g. "NokiaWeight.0.csv".
func BatchFileName(format string, index int) string {
	return fmt.Sprintf("%s.%d.csv", format, index)
}

// Flush writes the header and data lines of b to dir/<format>.<index>.csv,
// one line per row terminated by "\n". It creates dir if needed, replaces
// any existing file of the same name, and prints the path to w.
func Flush(b *Batch, dir, format string, index int, w io.Writer) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &types.IOError{Op: "creating output directory", Path: dir, Err: err}
	}

	path := filepath.Join(dir, BatchFileName(format, index))
	f, err := os.Create(path)
	if err != nil {
		return "", &types.IOError{Op: "creating batch file", Path: path, Err: err}
	}

	bw := bufio.NewWriter(f)
	for _, line := range b.Lines() {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			f.Close()
			return "", &types.IOError{Op: "writing batch file", Path: path, Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return "", &types.IOError{Op: "writing batch file", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &types.IOError{Op: "closing batch file", Path: path, Err: err}
	}

	fmt.Fprintln(w, path)
	return path, nil
}
