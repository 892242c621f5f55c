// Package cmd implements the command-line interface for hexvar.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hexvar-cli/hexvar/filesystem"
	"github.com/hexvar-cli/hexvar/icon"
	"github.com/hexvar-cli/hexvar/key"
	"github.com/hexvar-cli/hexvar/rewrite"
	"github.com/hexvar-cli/hexvar/scan"
	"github.com/hexvar-cli/hexvar/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(rewriteCmd)

	rewriteCmd.Flags().BoolP("force", "f", false, "Apply replacements without asking for confirmation")
	rewriteCmd.Flags().Bool("hex-only", false, "Substitute the representative hex value instead of a var() reference")
	rewriteCmd.Flags().String("css-vars", "", "Write canonical declarations as CSS custom properties to a file")
}

// rewriteCmd scans the given roots and rewrites every literal to its canonical form in place.
var rewriteCmd = &cobra.Command{
	Use:   "rewrite [roots...]",
	Short: "Rewrite every hex literal to its canonical group in place",
	Long: `Scan the given roots, deduplicate the observed colors, and rewrite every
literal in place: by default each one becomes a var() reference to its
canonical custom property, pairing with the --css-vars declaration file.`,
	Run: func(cmd *cobra.Command, args []string) {
		roots := args
		if len(roots) == 0 {
			roots = []string{"."}
		}

		options := &scan.Options{
			Roots:         roots,
			Extensions:    viper.GetStringSlice(key.ScanExtensions),
			Ignore:        viper.GetStringSlice(key.ScanIgnore),
			Threshold:     viper.GetFloat64(key.ClusterThreshold),
			NameThreshold: viper.GetFloat64(key.ClusterNameThreshold),
			Prefix:        viper.GetString(key.NamerPrefix),
			Progress:      true,
		}

		analysis, err := scan.Analyze(options)
		handleErr(err)

		if analysis.Report.Summary.UniqueColors == 0 {
			fmt.Printf("%s Nothing to rewrite: no hex literals found\n", icon.Get(icon.Fail))
			return
		}

		fmt.Printf("%s %s collapse into %s\n",
			icon.Get(icon.Palette),
			util.Quantify(analysis.Report.Summary.UniqueColors, "distinct literal", "distinct literals"),
			util.Quantify(analysis.Report.Summary.Clusters, "canonical group", "canonical groups"),
		)

		if !lo.Must(cmd.Flags().GetBool("force")) {
			confirmed := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Rewrite %s in place?",
					util.Quantify(analysis.Scanned.Files, "file", "files")),
			}
			handleErr(survey.AskOne(prompt, &confirmed))
			if !confirmed {
				return
			}
		}

		cssPath := lo.Must(cmd.Flags().GetString("css-vars"))
		if cssPath != "" {
			handleErr(writeCSSVars(analysis, cssPath))
		}

		result, err := rewrite.Apply(&rewrite.Options{
			Roots:      roots,
			Extensions: options.Extensions,
			Ignore:     options.Ignore,
			Mapping:    analysis.Report.Mapping,
			UseHex:     lo.Must(cmd.Flags().GetBool("hex-only")),
			OnFile:     mo.None[func(string)](),
		})
		handleErr(err)

		fmt.Printf("%s Rewrote %s across %s\n",
			icon.Get(icon.Success),
			util.Quantify(result.Replacements, "literal", "literals"),
			util.Quantify(result.FilesChanged, "file", "files"),
		)
	},
}

func writeCSSVars(analysis *scan.Analysis, path string) error {
	if err := filesystem.API().WriteFile(path, []byte(analysis.Report.CSS()), 0644); err != nil {
		return fmt.Errorf("write css variables file: %w", err)
	}
	fmt.Printf("%s Wrote CSS variables to %s\n", icon.Get(icon.Palette), path)
	return nil
}
