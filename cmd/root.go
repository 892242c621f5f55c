// Package cmd implements the command-line interface for hexvar.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hexvar-cli/hexvar/cluster"
	"github.com/hexvar-cli/hexvar/icon"
	"github.com/hexvar-cli/hexvar/key"
	"github.com/hexvar-cli/hexvar/log"
	"github.com/hexvar-cli/hexvar/scan"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringSliceP("ignore", "i", []string{}, "Exclude paths containing any of these substrings")
	lo.Must0(viper.BindPFlag(key.ScanIgnore, rootCmd.PersistentFlags().Lookup("ignore")))

	rootCmd.PersistentFlags().Float64P("threshold", "t", cluster.DefaultThreshold, "Delta E below which colors merge into one canonical group")
	lo.Must0(viper.BindPFlag(key.ClusterThreshold, rootCmd.PersistentFlags().Lookup("threshold")))

	rootCmd.Flags().StringP("out", "o", "", "Write the JSON report to a file instead of stdout")
	rootCmd.Flags().String("css-vars", "", "Write canonical declarations as CSS custom properties to a file")
	rootCmd.Flags().Bool("no-progress", false, "Disable the per-file progress message")
}

// rootCmd scans the given roots and emits the deduplicated color report.
var rootCmd = &cobra.Command{
	Use:   "hexvar [roots...]",
	Short: "Scan stylesheets for hex colors and merge visually equivalent ones",
	Long: `Scan a source tree for hexadecimal color literals, merge perceptually
indistinguishable colors into canonical groups, and emit a stylesheet of
canonical declarations plus a mapping for rewriting every original literal.`,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		roots := args
		if len(roots) == 0 {
			roots = []string{"."}
		}

		handleErr(scan.Run(&scan.Options{
			Out:           cmd.OutOrStdout(),
			Roots:         roots,
			Extensions:    viper.GetStringSlice(key.ScanExtensions),
			Ignore:        viper.GetStringSlice(key.ScanIgnore),
			Threshold:     viper.GetFloat64(key.ClusterThreshold),
			NameThreshold: viper.GetFloat64(key.ClusterNameThreshold),
			Prefix:        viper.GetString(key.NamerPrefix),
			CSSPath:       lo.Must(cmd.Flags().GetString("css-vars")),
			OutPath:       lo.Must(cmd.Flags().GetString("out")),
			Progress:      !lo.Must(cmd.Flags().GetBool("no-progress")),
		}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
