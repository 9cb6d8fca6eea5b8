// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the timeslice CLI.
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

// rootCmd is the base command for the timeslice CLI.
var rootCmd = &cobra.Command{
	Use:   "timeslice",
	Short: "Slice time-stamped transcripts out of spreadsheets",
	Long: `timeslice reads the first column of a spreadsheet containing a
semi-structured transcript (timestamp lines followed by free-text lines,
optionally titled with 【...】 brackets and closed by end markers) and
writes a new spreadsheet with one row per extracted block: ID, 时间,
标题, 内容.`,
	// runExtract prints the operator-facing diagnostics itself, so cobra
	// must not echo the returned error a second time.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./timeslice.yaml or ~/.config/timeslice/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("timeslice")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "timeslice"))
		}
	}

	viper.SetEnvPrefix("TIMESLICE")
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
