// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives a conversion run: it reads source export files,
// passes every record through a source and a sink adapter, and writes the
// rendered lines to numbered batch files.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/body-convert/internal/logging"
	"github.com/pdiddy/body-convert/internal/sink"
	"github.com/pdiddy/body-convert/internal/source"
	"github.com/pdiddy/body-convert/pkg/types"
)

// Options configures a run. Source and Sink are resolved by the caller.
type Options struct {
	InputDir  string
	OutputDir string
	Source    source.Adapter
	Sink      sink.Adapter
	Policy    types.ErrorPolicy

	// Logger receives diagnostics such as skipped records. Nil discards them.
	Logger *logrus.Entry
}

// Summary holds the outcome of a run.
type Summary struct {
	Files     int
	Records   int
	Converted int
	Skipped   int

	// Batches lists the written files in index order.
	Batches []string
}

// HasSkips reports whether any record was skipped under PolicySkip.
func (s Summary) HasSkips() bool {
	return s.Skipped > 0
}

// Run converts every record under opts.InputDir and writes the batches to
// opts.OutputDir. Written file paths and a closing summary are printed to w.
//
// Under PolicyFail the first bad record aborts the run and the batch being
// filled is not written. Files already flushed stay on disk. Under
// PolicySkip bad records are logged and counted. I/O errors are always fatal.
func Run(ctx context.Context, opts Options, w io.Writer) (Summary, error) {
	if opts.Source == nil || opts.Sink == nil {
		return Summary{}, errors.New("convert: source and sink adapters are required")
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	files, err := ListInputs(opts.InputDir)
	if err != nil {
		return Summary{}, err
	}
	log.WithField("dir", opts.InputDir).Debugf("found %d input file(s)", len(files))

	r := &run{
		opts:  opts,
		w:     w,
		log:   log,
		batch: NewBatch(opts.Sink.Header(), opts.Sink.BatchSize()),
	}

	for _, path := range files {
		select {
		case <-ctx.Done():
			return r.summary, ctx.Err()
		default:
		}

		if err := r.convertFile(path); err != nil {
			return r.summary, err
		}
	}

	// A header-only remainder is written only when no batch exists yet, so an
	// empty run still produces one file and an exact multiple of the batch
	// size does not leave a trailing empty file.
	if r.batch.Len() > 0 || r.index == 0 {
		if err := r.flush(); err != nil {
			return r.summary, err
		}
	}

	fmt.Fprintf(w, "\nConversion summary: %d file(s), %d record(s), %d converted, %d skipped, %d batch file(s)\n",
		r.summary.Files, r.summary.Records, r.summary.Converted, r.summary.Skipped, len(r.summary.Batches))
	return r.summary, nil
}

// run holds the state of one conversion pass.
type run struct {
	opts    Options
	w       io.Writer
	log     *logrus.Entry
	batch   *Batch
	index   int
	summary Summary
}

func (r *run) convertFile(path string) error {
	records, err := ReadRecords(path)
	if err != nil {
		return err
	}
	r.summary.Files++
	r.log.WithField("file", filepath.Base(path)).Debugf("decoded %d record(s)", len(records))

	for i, rec := range records {
		r.summary.Records++

		line, err := r.convertRecord(rec)
		if err != nil {
			perr := asParseError(err, path, i)
			if r.opts.Policy == types.PolicySkip {
				r.log.WithError(perr.Err).WithField("file", path).WithField("record", i).Warn("skipping record")
				r.summary.Skipped++
				continue
			}
			return perr
		}

		r.summary.Converted++
		if r.batch.Add(line) {
			if err := r.flush(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *run) convertRecord(rec source.RawRecord) (string, error) {
	entry, err := r.opts.Source.Parse(rec)
	if err != nil {
		return "", err
	}
	out := r.opts.Sink.FromEntry(entry)
	line, err := r.opts.Sink.SerializeLine(out)
	if err != nil {
		return "", fmt.Errorf("serializing %s record: %w", r.opts.Sink.Name(), err)
	}
	return line, nil
}

func (r *run) flush() error {
	path, err := Flush(r.batch, r.opts.OutputDir, r.opts.Sink.Name(), r.index, r.w)
	if err != nil {
		return err
	}
	r.summary.Batches = append(r.summary.Batches, path)
	r.index++
	r.batch.Reset()
	return nil
}

// asParseError attaches file and record position to err.
func asParseError(err error, file string, index int) *types.ParseError {
	var perr *types.ParseError
	if errors.As(err, &perr) {
		return &types.ParseError{File: file, Index: index, Err: perr.Err}
	}
	return &types.ParseError{File: file, Index: index, Err: err}
}
