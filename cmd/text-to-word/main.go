// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the text-to-word CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/text-to-word/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the text-to-word CLI.
var rootCmd = &cobra.Command{
	Use:   "text-to-word",
	Short: "Convert plain text files to Word documents (.docx)",
	Long: `text-to-word turns UTF-8 text files into Word documents. Every line of
input becomes one paragraph; blank lines become empty paragraphs. All
paragraphs use one default font (Calibri 11pt unless configured).

Settings are read from ./text-to-word.yaml or ~/.config/text-to-word/config.yaml
and from TEXT_TO_WORD_* environment variables. Flags take precedence.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./text-to-word.yaml or ~/.config/text-to-word/config.yaml)")

	viper.SetDefault("font.name", types.DefaultFontName)
	viper.SetDefault("font.size", types.DefaultFontSize)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("text-to-word")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "text-to-word"))
		}
	}

	viper.SetEnvPrefix("TEXT_TO_WORD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: could not read config %s: %v\n", cfgFile, err)
	}
}

// conversionConfig assembles the run settings from flags, environment,
// config file, and defaults, in that order of precedence.
func conversionConfig() types.ConversionConfig {
	return types.ConversionConfig{
		Font: types.FontConfig{
			Name: viper.GetString("font.name"),
			Size: viper.GetFloat64("font.size"),
		},
		OutputDir: viper.GetString("output_dir"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
