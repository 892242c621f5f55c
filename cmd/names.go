// Package cmd implements the command-line interface for hexvar.
package cmd

import (
	"os"

	"github.com/hexvar-cli/hexvar/namer"
	"github.com/hexvar-cli/hexvar/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(namesCmd)
	namesCmd.SetOut(os.Stdout)
	namesCmd.Flags().IntP("limit", "l", 10, "Maximum number of matches to display")
}

// namesCmd searches the named reference color table.
var namesCmd = &cobra.Command{
	Use:   "names [query]",
	Short: "Search the named reference color table",
	Long: `Fuzzy-search the table of named reference colors that canonical groups
borrow their identifiers from. Without a query, the whole table is listed.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}

		matches := namer.Web().Search(query)
		if limit := lo.Must(cmd.Flags().GetInt("limit")); len(matches) > limit {
			matches = matches[:limit]
		}

		for _, match := range matches {
			cmd.Printf("%s %-22s %s\n",
				style.Swatch(string(match.Hex)),
				match.Name,
				style.Faint(string(match.Hex)),
			)
		}
	},
}
