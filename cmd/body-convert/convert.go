// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/body-convert/internal/convert"
	"github.com/pdiddy/body-convert/internal/logging"
	"github.com/pdiddy/body-convert/internal/sink"
	"github.com/pdiddy/body-convert/internal/source"
	"github.com/pdiddy/body-convert/pkg/types"
)

const (
	defaultInputDir     = "./data"
	defaultOutputDir    = "./output"
	defaultInputFormat  = "fitbit_weight"
	defaultOutputFormat = "nokia_weight"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an export directory into import batch files",
	Long: `Convert reads every file in the input directory (sorted by name, not
recursive), parses each record with the input format, renders it in the
output format, and writes <Format>.<n>.csv batch files to the output
directory. Each batch starts with the format's header line.

By default the first bad record stops the run. With --on-error=skip bad
records are logged and left out.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("input-dir", "d", defaultInputDir, "input directory")
	convertCmd.Flags().StringP("output-dir", "D", defaultOutputDir, "output directory")
	convertCmd.Flags().StringP("input-format", "f", defaultInputFormat, "input format (see 'formats')")
	convertCmd.Flags().StringP("output-format", "F", defaultOutputFormat, "output format (see 'formats')")
	convertCmd.Flags().String("on-error", string(types.PolicyFail), "bad record handling: fail or skip")
	convertCmd.Flags().String("report", "", "write a YAML run report to this path")

	for _, key := range []string{"input-dir", "output-dir", "input-format", "output-format", "on-error", "report"} {
		mustBindPFlag(configKey(key), convertCmd.Flags().Lookup(key))
	}

	rootCmd.AddCommand(convertCmd)
}

// mustBindPFlag binds flag to a viper key and panics if the flag does not
// exist, so a mistyped name fails at startup.
func mustBindPFlag(key string, flag *pflag.Flag) {
	if flag == nil {
		panic(fmt.Sprintf("binding %q: flag not defined", key))
	}
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding %q: %v", key, err))
	}
}

// configKey maps a flag name to its config file key.
func configKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// conversionConfig reads the effective settings from viper.
func conversionConfig() (types.ConversionConfig, error) {
	policy, err := types.ParseErrorPolicy(viper.GetString("on_error"))
	if err != nil {
		return types.ConversionConfig{}, err
	}
	return types.ConversionConfig{
		InputDir:     viper.GetString("input_dir"),
		OutputDir:    viper.GetString("output_dir"),
		InputFormat:  viper.GetString("input_format"),
		OutputFormat: viper.GetString("output_format"),
		OnError:      policy,
		ReportPath:   viper.GetString("report"),
		LogLevel:     viper.GetString("log_level"),
	}, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := conversionConfig()
	if err != nil {
		return err
	}
	return convertWith(cmd.Context(), cfg, os.Stdout)
}

// convertWith resolves the adapters named in cfg and runs the pipeline.
func convertWith(ctx context.Context, cfg types.ConversionConfig, w io.Writer) error {
	src, err := source.Lookup(cfg.InputFormat)
	if err != nil {
		return err
	}
	dst, err := sink.Lookup(cfg.OutputFormat)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	opts := convert.Options{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Source:    src,
		Sink:      dst,
		Policy:    cfg.OnError,
		Logger:    logging.NewLogger("convert").WithField("run", src.Name()+"->"+dst.Name()),
	}

	summary, err := convert.Run(ctx, opts, w)
	if err != nil {
		return err
	}

	if cfg.ReportPath != "" {
		if err := convert.WriteReport(cfg.ReportPath, convert.NewReport(opts, summary)); err != nil {
			return err
		}
		fmt.Fprintf(w, "report: %s\n", cfg.ReportPath)
	}
	return nil
}
