// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the body-convert CLI.
// It converts body-composition exports from one vendor format to another.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/body-convert/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the body-convert CLI.
var rootCmd = &cobra.Command{
	Use:   "body-convert",
	Short: "Convert body-composition measurement exports between vendors",
	Long: `body-convert reads a directory of weight and body-composition records
exported by one vendor, normalizes them, and writes them in another vendor's
import format as numbered batch files.

Settings come from flags, BODY_CONVERT_* environment variables, or a
body-convert.yaml config file, in that order of precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(viper.GetString("log_level"), os.Stderr)
		if used := viper.ConfigFileUsed(); used != "" {
			logging.NewLogger("config").WithField("file", used).Debug("using config file")
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./body-convert.yaml or ~/.config/body-convert/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "diagnostic log level: debug, info, warn, or error")
	mustBindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("body-convert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "body-convert"))
		}
	}

	viper.SetEnvPrefix("BODY_CONVERT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
			os.Exit(1)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
