package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/feimaomiao/proxysheet/internal/layout"
	"github.com/feimaomiao/proxysheet/internal/logging"
	"github.com/feimaomiao/proxysheet/internal/resolve"
	"github.com/feimaomiao/proxysheet/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <folder>",
	Short: "Classify a folder without writing a PDF",
	Long: `Inspect performs a dry run over a folder: every entry is classified as
accepted or rejected exactly as a build would classify it, and the page and
cell each accepted image would land on is printed. No PDF is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := types.JobConfig{
			SourceDir: args[0],
			DPI:       types.DefaultDPI,
			Verbosity: verbosityFromFlags(cmd),
		}
		if viper.IsSet("dpi") {
			cfg.DPI = viper.GetInt("dpi")
		}
		if cmd.Flags().Changed("dpi") {
			cfg.DPI, _ = cmd.Flags().GetInt("dpi")
		}
		if cfg.DPI <= 0 {
			return fmt.Errorf("dpi must be positive, got %d", cfg.DPI)
		}
		cfg.ExcludedPrefixes = viper.GetStringSlice("exclude")
		excl, _ := cmd.Flags().GetStringArray("exclude")
		cfg.ExcludedPrefixes = append(cfg.ExcludedPrefixes, excl...)

		if err := resolve.Preflight(cfg); err != nil {
			return err
		}

		log := logging.New(os.Stderr, cfg.Verbosity)
		res, err := resolve.Classify(cfg, log)
		if err != nil {
			return err
		}

		for i, name := range res.AcceptedNames {
			col, row := layout.Cell(i)
			fmt.Fprintf(os.Stdout, "accepted: %s (page %d, cell %d,%d)\n",
				name, layout.PageIndex(i)+1, col, row)
		}
		resolve.WriteReport(os.Stdout, res.Rejected)

		fmt.Fprintf(os.Stdout, "\n%d accepted, %d rejected, %d pages\n",
			len(res.AcceptedNames), len(res.Rejected), layout.PageCount(len(res.AcceptedNames)))
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringArrayP("exclude", "e", nil, "case-insensitive filename prefixes to exclude (repeatable)")
	inspectCmd.Flags().IntP("dpi", "d", types.DefaultDPI, "scale factor for page and card geometry")
	inspectCmd.Flags().BoolP("verbose", "v", false, "increase output verbosity")
	inspectCmd.Flags().BoolP("quiet", "q", false, "reduce output verbosity")
	inspectCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(inspectCmd)
}
