// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source parses vendor export records into types.BodyEntry values.
// Each supported input vendor has one Adapter; adapters are selected by name
// from a fixed registry.
package source

import (
	"sort"
	"strings"

	"github.com/pdiddy/body-convert/pkg/types"
)

// RawRecord is one measurement object as decoded from an export file.
// Numbers arrive as json.Number.
type RawRecord map[string]any

// Adapter turns a RawRecord into a BodyEntry. Implementations are pure.
type Adapter interface {
	// Name returns the canonical format name (e.g. "FitbitWeight").
	Name() string

	// Parse converts one raw record. Failures are returned as *types.ParseError.
	Parse(rec RawRecord) (types.BodyEntry, error)
}

// registry maps normalized format names to adapters.
var registry = map[string]Adapter{
	"fitbitweight": FitbitWeight{},
}

// Lookup returns the adapter registered under name. Matching ignores case,
// underscores, and dashes, so "fitbit_weight" and "FitbitWeight" are equal.
func Lookup(name string) (Adapter, error) {
	if a, ok := registry[normalize(name)]; ok {
		return a, nil
	}
	return nil, &types.ConfigError{Kind: "source format", Name: name, Known: Names()}
}

// Names returns the canonical names of all source formats, sorted.
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
