// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/body-convert/internal/convert"
	"github.com/pdiddy/body-convert/pkg/types"
)

func testConfig(t *testing.T) types.ConversionConfig {
	t.Helper()
	in := t.TempDir()
	data := `[{"date":"2018-01-15","time":"07:30:15","weight":70,"fat":20}]`
	require.NoError(t, os.WriteFile(filepath.Join(in, "weight.json"), []byte(data), 0o644))
	return types.ConversionConfig{
		InputDir:     in,
		OutputDir:    filepath.Join(t.TempDir(), "out"),
		InputFormat:  defaultInputFormat,
		OutputFormat: defaultOutputFormat,
		OnError:      types.PolicyFail,
	}
}

func TestConvertWith(t *testing.T) {
	cfg := testConfig(t)
	cfg.ReportPath = filepath.Join(t.TempDir(), "report.yaml")

	var out bytes.Buffer
	require.NoError(t, convertWith(context.Background(), cfg, &out))

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "NokiaWeight.0.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"Date,Weight,Fat mass,Bone mass,Muscle mass,Hydration,Comments\n"+
			"2018-01-15 07:30:15,70.0,14.0,,,,\n",
		string(data))

	report, err := convert.ReadReport(cfg.ReportPath)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.Converted)
	assert.Contains(t, out.String(), "report: "+cfg.ReportPath)
}

func TestConvertWith_UnknownFormat(t *testing.T) {
	tests := []struct {
		name string
		edit func(*types.ConversionConfig)
		kind string
	}{
		{
			name: "input format",
			edit: func(c *types.ConversionConfig) { c.InputFormat = "garmin" },
			kind: "source format",
		},
		{
			name: "output format",
			edit: func(c *types.ConversionConfig) { c.OutputFormat = "apple_health" },
			kind: "sink format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.edit(&cfg)

			err := convertWith(context.Background(), cfg, &bytes.Buffer{})
			var cerr *types.ConfigError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.kind, cerr.Kind)

			_, statErr := os.Stat(cfg.OutputDir)
			assert.True(t, os.IsNotExist(statErr), "nothing is written on config errors")
		})
	}
}

func TestConfigKey(t *testing.T) {
	assert.Equal(t, "input_dir", configKey("input-dir"))
	assert.Equal(t, "on_error", configKey("on-error"))
	assert.Equal(t, "report", configKey("report"))
}

func TestMustBindPFlag(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("batch-label", "weekly", "")

	mustBindPFlag("test_batch_label", flags.Lookup("batch-label"))
	assert.Equal(t, "weekly", viper.GetString("test_batch_label"))

	assert.PanicsWithValue(t, `binding "test_missing": flag not defined`, func() {
		mustBindPFlag("test_missing", flags.Lookup("missing"))
	})
}

func TestFlagsBoundToConfig(t *testing.T) {
	assert.Equal(t, "info", viper.GetString("log_level"))
	assert.Equal(t, defaultInputDir, viper.GetString("input_dir"))
	assert.Equal(t, defaultOutputDir, viper.GetString("output_dir"))
	assert.Equal(t, defaultInputFormat, viper.GetString("input_format"))
	assert.Equal(t, defaultOutputFormat, viper.GetString("output_format"))
	assert.Equal(t, string(types.PolicyFail), viper.GetString("on_error"))
}

func TestPrintFormats(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printFormats(&out))

	assert.Contains(t, out.String(), "FitbitWeight")
	assert.Contains(t, out.String(), "NokiaWeight")
	assert.Contains(t, out.String(), "300")
	assert.Contains(t, out.String(), "Date,Weight,Fat mass,Bone mass,Muscle mass,Hydration,Comments")
}

func TestWriteSchema(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeSchema(&out))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "schema must have properties")
	for _, key := range []string{"input_dir", "output_dir", "input_format", "output_format", "on_error"} {
		assert.Contains(t, props, key)
	}
}
