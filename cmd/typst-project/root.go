// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tingerrr/typst-project/internal/config"
	"github.com/tingerrr/typst-project/pkg/heuristics"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, available to all subcommands.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "typst-project",
		Short: "Locate typst project roots and inspect manifests",
		Long: TitleStyle.Render("typst-project") + SubtitleStyle.Render(" - typst project discovery and manifest tooling") + `

typst-project walks a path's ancestors for project markers (typst.toml,
main.typ, lib.typ) and parses typst.toml manifests, validating identity
fields such as package names, authors, and license expressions.

` + SubtitleStyle.Render("Examples:") + `
  typst-project root            Find the project root from the working directory
  typst-project check           Test whether the working directory is a root
  typst-project manifest        Show the manifest of the containing project
  typst-project validate FILE   Validate a manifest file
  typst-project init            Write a skeleton typst.toml`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/typst-project/config.toml)")

	rootCmd.AddCommand(findRootCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called once by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig reads the config file and environment overrides.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		return
	}
	cfg = loaded

	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// startPath resolves the optional positional path argument, defaulting to
// the current working directory.
func startPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// registry returns the heuristic registry selected by the configuration.
func registry() *heuristics.Registry {
	return cfg.Registry()
}
