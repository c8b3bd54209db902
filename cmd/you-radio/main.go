// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the you-radio CLI, which converts
// station directory documents into M3U playlists and keeps a history of
// conversion runs.
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

// rootCmd is the base command for the you-radio CLI.
var rootCmd = &cobra.Command{
	Use:   "you-radio",
	Short: "Convert radio station directories into M3U playlists",
	Long: `you-radio reads JSON station directories (one file per genre or
category group) and writes one extended M3U playlist per file.

Directories, the logo host, and optional run outputs (YAML report, metrics
file, SQLite history) come from flags, YOU_RADIO_* environment variables, or
you-radio.yaml.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./you-radio.yaml or ~/.config/you-radio/you-radio.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("you-radio")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "you-radio"))
		}
	}

	viper.SetEnvPrefix("YOU_RADIO")
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
