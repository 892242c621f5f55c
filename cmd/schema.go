// Package cmd implements the command-line interface for hexvar.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/hexvar-cli/hexvar/artifact"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaCmd generates the JSON Schema for the structured report output.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON Schema for the scan report",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "report", "summary", "declaration", "target":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&artifact.Report{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
