// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pdiddy/body-convert/internal/sink"
	"github.com/pdiddy/body-convert/internal/source"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported input and output formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printFormats(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

var headingStyle = lipgloss.NewStyle().Bold(true)

func printFormats(out io.Writer) error {
	fmt.Fprintln(out, headingStyle.Render("Input formats"))
	for _, name := range source.Names() {
		fmt.Fprintf(out, "  %s\n", name)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, headingStyle.Render("Output formats"))
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "  NAME\tBATCH\tHEADER")
	for _, name := range sink.Names() {
		a, err := sink.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\t%d\t%s\n", a.Name(), a.BatchSize(), a.Header())
	}
	return w.Flush()
}
