// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the proxysheet CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. Running it with a folder argument builds
// the proxy sheet PDF directly; everything else is a subcommand.
var rootCmd = &cobra.Command{
	Use:   "proxysheet <folder>",
	Short: "Print-ready proxy card sheets from a folder of images",
	Long: `proxysheet reads a folder of card images, stretches each one to a fixed
2.5x3.5 card cell, lays them out nine to a letter-sized page, and writes a
single multi-page PDF ready for printing and cutting.

Files that are excluded, are not regular files, or fail image decoding are
skipped and listed in a rejection table; they never abort the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./proxysheet.yaml or ~/.config/proxysheet/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("proxysheet")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "proxysheet"))
		}
	}

	viper.SetEnvPrefix("PROXYSHEET")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
