// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/body-convert/internal/source"
	"github.com/pdiddy/body-convert/pkg/types"
)

// ListInputs returns the regular, non-hidden files directly inside dir,
// sorted by name. Symlinks are followed; links to directories and other
// non-regular targets are left out. Subdirectories are not descended.
func ListInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &types.IOError{Op: "reading input directory", Path: dir, Err: err}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !entry.Type().IsRegular() {
			info, err := os.Stat(path)
			if err != nil {
				return nil, &types.IOError{Op: "reading input file", Path: path, Err: err}
			}
			if !info.Mode().IsRegular() {
				continue
			}
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// DecodeRecords parses a JSON array of objects. Numbers are kept as
// json.Number. Input that is empty or only whitespace yields no records.
func DecodeRecords(r io.Reader) ([]source.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []source.RawRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding JSON array: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decoding JSON array: unexpected data after array")
	}
	return records, nil
}

// ReadRecords opens path and decodes its records.
func ReadRecords(path string) ([]source.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.IOError{Op: "opening input file", Path: path, Err: err}
	}
	defer f.Close()

	records, err := DecodeRecords(f)
	if err != nil {
		return nil, &types.IOError{Op: "reading input file", Path: path, Err: err}
	}
	return records, nil
}
