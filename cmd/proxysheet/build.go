package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/feimaomiao/proxysheet/internal/jobfile"
	"github.com/feimaomiao/proxysheet/internal/layout"
	"github.com/feimaomiao/proxysheet/internal/logging"
	"github.com/feimaomiao/proxysheet/internal/pdfout"
	"github.com/feimaomiao/proxysheet/internal/resolve"
	"github.com/feimaomiao/proxysheet/pkg/types"
)

func init() {
	rootCmd.Flags().StringP("output", "o", "", "output pdf file name (default output.pdf; .pdf appended if missing)")
	rootCmd.Flags().StringArrayP("exclude", "e", nil, "case-insensitive filename prefixes to exclude (repeatable)")
	rootCmd.Flags().IntP("dpi", "d", types.DefaultDPI, "scale factor for page and card geometry")
	rootCmd.Flags().BoolP("verbose", "v", false, "increase output verbosity")
	rootCmd.Flags().BoolP("quiet", "q", false, "reduce output verbosity")
	rootCmd.Flags().String("job", "", "YAML job file with folder, output, excludes, and dpi")
	rootCmd.Flags().String("manifest", "", "write a YAML run manifest to this path after a successful build")

	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// runBuild is the main pipeline: resolve, compose, write.
func runBuild(cmd *cobra.Command, args []string) error {
	cfg, manifestPath, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := resolve.Preflight(cfg); err != nil {
		return err
	}

	log := logging.New(os.Stderr, cfg.Verbosity)
	if cfg.Verbosity > types.Quiet {
		printBanner(os.Stdout, cfg)
	}

	log.Info().Str("folder", cfg.SourceDir).Msg("reading and resizing images")
	res, err := resolve.Resolve(cfg, log)
	if err != nil {
		return err
	}
	resolve.WriteReport(os.Stdout, res.Rejected)

	log.Info().Msg("pasting images on backgrounds")
	pages := layout.Compose(res.Accepted, cfg.DPI, log)

	log.Info().Int("pages", len(pages)).Msg("converting into pdf")
	if err := pdfout.WriteDocument(pages, cfg.OutputPath); err != nil {
		return err
	}

	if manifestPath != "" {
		m := jobfile.NewManifest(cfg, res.AcceptedNames, res.Rejected)
		if err := jobfile.WriteManifest(manifestPath, m); err != nil {
			return err
		}
	}

	log.Info().Str("output", cfg.OutputPath).Msg("done")
	return nil
}

// buildConfig assembles the job configuration. Precedence, lowest to
// highest: built-in defaults, config file / environment, job file,
// command-line flags.
func buildConfig(cmd *cobra.Command, args []string) (types.JobConfig, string, error) {
	flags := cmd.Flags()
	cfg := types.JobConfig{DPI: types.DefaultDPI}

	if viper.IsSet("dpi") {
		cfg.DPI = viper.GetInt("dpi")
	}
	cfg.ExcludedPrefixes = viper.GetStringSlice("exclude")

	var output string
	if viper.IsSet("output") {
		output = viper.GetString("output")
	}

	jobPath, _ := flags.GetString("job")
	if jobPath != "" {
		jf, err := jobfile.Read(jobPath)
		if err != nil {
			return cfg, "", err
		}
		if jf.Folder != "" {
			cfg.SourceDir = jf.Folder
		}
		if jf.Output != "" {
			output = jf.Output
		}
		if jf.DPI > 0 {
			cfg.DPI = jf.DPI
		}
		cfg.ExcludedPrefixes = append(cfg.ExcludedPrefixes, jf.Excluded...)
	}

	if len(args) > 0 {
		cfg.SourceDir = args[0]
	}
	if cfg.SourceDir == "" {
		return cfg, "", errors.New("a folder argument (or a job file with a folder) is required")
	}

	if flags.Changed("dpi") {
		cfg.DPI, _ = flags.GetInt("dpi")
	}
	if cfg.DPI <= 0 {
		return cfg, "", fmt.Errorf("dpi must be positive, got %d", cfg.DPI)
	}

	if flags.Changed("output") {
		output, _ = flags.GetString("output")
	}
	if output == "" {
		output = "output"
	}
	cfg.OutputPath = normalizeOutput(output)

	excl, _ := flags.GetStringArray("exclude")
	cfg.ExcludedPrefixes = append(cfg.ExcludedPrefixes, excl...)

	cfg.Verbosity = verbosityFromFlags(cmd)

	manifestPath, _ := flags.GetString("manifest")
	return cfg, manifestPath, nil
}

// normalizeOutput appends the .pdf extension when it is missing.
func normalizeOutput(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return name
	}
	return name + ".pdf"
}

// verbosityFromFlags maps the mutually exclusive -v/-q flags to a level.
func verbosityFromFlags(cmd *cobra.Command) types.Verbosity {
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")
	switch {
	case quiet:
		return types.Quiet
	case verbose:
		return types.Verbose
	default:
		return types.Normal
	}
}

// printBanner echoes the resolved run parameters before processing.
func printBanner(w io.Writer, cfg types.JobConfig) {
	fmt.Fprintf(w, "Reading from folder:    %s\n", cfg.SourceDir)
	fmt.Fprintf(w, "Outputting to file:     %s\n", cfg.OutputPath)
	fmt.Fprintf(w, "Excluded Files:         %s\n", strings.Join(cfg.ExcludedPrefixes, " /"))
	fmt.Fprintf(w, "Output DPI:             %d\n", cfg.DPI)
	fmt.Fprintf(w, "Verbosity:              %s\n", cfg.Verbosity)
}
