// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// ErrorPolicy selects what the pipeline does with a record it cannot parse.
type ErrorPolicy string

const (
	// PolicyFail aborts the run on the first bad record.
	PolicyFail ErrorPolicy = "fail"
	// PolicySkip logs the bad record and continues with the next one.
	PolicySkip ErrorPolicy = "skip"
)

// ParseErrorPolicy converts a flag or config value into an ErrorPolicy.
// An empty string selects PolicyFail.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch ErrorPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyFail:
		return PolicyFail, nil
	case PolicySkip:
		return PolicySkip, nil
	}
	return "", &ConfigError{
		Kind:  "error policy",
		Name:  s,
		Known: []string{string(PolicyFail), string(PolicySkip)},
	}
}

// ConversionConfig holds settings for a conversion run. It mirrors the keys
// accepted in body-convert.yaml.
type ConversionConfig struct {
	// InputDir is scanned (non-recursively) for source export files.
	InputDir string `json:"input_dir" yaml:"input_dir" jsonschema:"default=./data"`

	// OutputDir receives the numbered batch files.
	OutputDir string `json:"output_dir" yaml:"output_dir" jsonschema:"default=./output"`

	// InputFormat names the source adapter (e.g. "fitbit_weight").
	InputFormat string `json:"input_format" yaml:"input_format" jsonschema:"default=fitbit_weight"`

	// OutputFormat names the sink adapter (e.g. "nokia_weight").
	OutputFormat string `json:"output_format" yaml:"output_format" jsonschema:"default=nokia_weight"`

	// OnError is "fail" (default) or "skip".
	OnError ErrorPolicy `json:"on_error" yaml:"on_error" jsonschema:"enum=fail,enum=skip"`

	// ReportPath, when set, receives a YAML summary of the run.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}
