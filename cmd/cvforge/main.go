// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cvforge CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE from the --verbose flag.
var logger = zap.NewNop()

// rootCmd is the base command for the cvforge CLI.
var rootCmd = &cobra.Command{
	Use:   "cvforge",
	Short: "Turn profile JSON exports into rendered CVs",
	Long: `cvforge converts a professional-profile JSON export into a RenderCV
document and renders it to PDF (plus Typst, HTML, Markdown and PNG pages)
with the rendercv CLI.

Output is organized as <base-output-dir>/<user-id>/<theme>/. Rendering a
theme again replaces that theme's previous output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(viper.GetBool("verbose"))
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cvforge.yaml or ~/.config/cvforge/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug detail to stderr")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cvforge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cvforge"))
		}
	}

	// Nested keys map to underscored variables, e.g. renderer.binary is
	// read from CVFORGE_RENDERER_BINARY.
	viper.SetEnvPrefix("CVFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger returns a console logger on stderr. Warnings (such as dates
// that could not be parsed) are always shown; verbose adds info and debug.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
