// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// ConfigError reports a format name or setting that does not resolve.
type ConfigError struct {
	// Kind describes what was being resolved (e.g. "source format").
	Kind string
	// Name is the value that failed to resolve.
	Name string
	// Known lists the accepted values.
	Known []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: unknown %s %q (known: %s)", e.Kind, e.Name, strings.Join(e.Known, ", "))
}

// ParseError reports a raw record that could not be turned into a BodyEntry.
type ParseError struct {
	// File is the input file holding the record; empty when not known.
	File string
	// Index is the zero-based position of the record in its file, or -1.
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("parse error: %v", e.Err)
	}
	return fmt.Sprintf("parse error: %s record %d: %v", e.File, e.Index, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a filesystem or decode failure on input or output.
type IOError struct {
	// Op is a short verb phrase such as "reading input directory".
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
