// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/body-convert/internal/sink"
	"github.com/pdiddy/body-convert/internal/source"
	"github.com/pdiddy/body-convert/pkg/types"
)

func TestReport_RoundTrip(t *testing.T) {
	opts := Options{
		InputDir:  "data",
		OutputDir: "output",
		Source:    source.FitbitWeight{},
		Sink:      sink.Nokia{},
		Policy:    types.PolicySkip,
	}
	summary := Summary{
		Files:     2,
		Records:   10,
		Converted: 9,
		Skipped:   1,
		Batches:   []string{"output/NokiaWeight.0.csv"},
	}

	r := NewReport(opts, summary)
	_, err := uuid.Parse(r.RunID)
	require.NoError(t, err, "run id must be a UUID")

	path := filepath.Join(t.TempDir(), "reports", "run.yaml")
	require.NoError(t, WriteReport(path, r))

	got, err := ReadReport(path)
	require.NoError(t, err)

	assert.Equal(t, r.RunID, got.RunID)
	assert.Equal(t, "FitbitWeight", got.Source)
	assert.Equal(t, "NokiaWeight", got.Sink)
	assert.Equal(t, "skip", got.Policy)
	assert.Equal(t, ReportSummary{Files: 2, Records: 10, Converted: 9, Skipped: 1}, got.Summary)
	assert.Equal(t, summary.Batches, got.Batches)
	assert.True(t, r.CompletedAt.Equal(got.CompletedAt))
}

func TestNewReport_DefaultsPolicy(t *testing.T) {
	r := NewReport(Options{}, Summary{})
	assert.Equal(t, "fail", r.Policy)
	assert.Empty(t, r.Source)
}
