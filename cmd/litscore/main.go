// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the litscore CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the litscore CLI.
var rootCmd = &cobra.Command{
	Use:   "litscore",
	Short: "Tag and score BibTeX records for disaster and evacuation literature reviews",
	Long: `litscore triages a bibliography for a disaster and evacuation literature
review. The tag subcommand adds topic keywords to every record of a BibTeX
file; the score subcommand sums per-topic weights over those keywords and
reports how the scores are distributed.

Topic terms and weights come from a built-in taxonomy. Pass --taxonomy to
use your own YAML file; run "litscore taxonomy" to print the built-in one
as a starting point.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./litscore.yaml or ~/.config/litscore/litscore.yaml)")
	rootCmd.PersistentFlags().String("taxonomy", "", "taxonomy YAML file (default: built-in)")
	bindFlag("taxonomy", rootCmd.PersistentFlags().Lookup("taxonomy"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("litscore")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "litscore"))
		}
	}

	viper.SetEnvPrefix("LITSCORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: reading config %s: %v\n", cfgFile, err)
	}
}

// bindFlag ties a config key to a flag so that an explicit flag wins over
// the environment, which wins over the config file, which wins over the
// flag default.
func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
