// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/pdiddy/body-convert/pkg/types"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of body-convert.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeSchema(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func writeSchema(w io.Writer) error {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&types.ConversionConfig{})
	schema.Title = "body-convert configuration"
	schema.Description = "Schema for body-convert.yaml."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling schema: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
