// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sink renders types.BodyEntry values into a target vendor's import
// format. Each supported output vendor has one Adapter; adapters are
// selected by name from a fixed registry.
package sink

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/body-convert/pkg/types"
)

// Record is one row of a target format, ready to serialize.
type Record interface {
	// Columns returns the cell values in the format's column order.
	// Absent values are empty strings.
	Columns() []string
}

// Adapter converts entries into a target format and describes its file layout.
type Adapter interface {
	// Name returns the canonical format name. It prefixes output filenames.
	Name() string

	// FromEntry maps a BodyEntry onto the format's record.
	FromEntry(e types.BodyEntry) Record

	// SerializeLine renders a record as a single line without a trailing newline.
	SerializeLine(r Record) (string, error)

	// Header returns the fixed first line of every output file.
	Header() string

	// BatchSize returns the maximum number of data lines per output file.
	BatchSize() int
}

var registry = map[string]Adapter{
	"nokiaweight": Nokia{},
}

// Lookup returns the adapter registered under name. Matching ignores case,
// underscores, and dashes.
func Lookup(name string) (Adapter, error) {
	if a, ok := registry[normalize(name)]; ok {
		return a, nil
	}
	return nil, &types.ConfigError{Kind: "sink format", Name: name, Known: Names()}
}

// Names returns the canonical names of all sink formats, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, a := range registry {
		names = append(names, a.Name())
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "", "-", "").Replace(name)
}

// csvLine renders cells as one comma-separated line with standard quoting.
func csvLine(cells []string) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(cells); err != nil {
		return "", fmt.Errorf("writing csv line: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("writing csv line: %w", err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// formatFloat renders v in shortest round-trip form, keeping a ".0" on
// whole numbers so 14 prints as "14.0".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func optionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
