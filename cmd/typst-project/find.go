// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tingerrr/typst-project/pkg/heuristics"
)

var (
	// findAll matches against every marker the registry carries and keeps
	// accumulating instead of stopping at the first hit.
	findAll bool

	findRootCmd = &cobra.Command{
		Use:   "root [path]",
		Short: "Find the project root containing a path",
		Long: `Walks the given path and its ancestors from nearest to farthest and prints
the first directory matching a project marker. Without a path, the search
starts at the current working directory.

A relative path is not resolved to an absolute path first; its walk covers
the ancestors spelled in it and ends at the current working directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFindRoot,
	}
)

func init() {
	findRootCmd.Flags().BoolVar(&findAll, "all", false,
		"match every registry marker and report which heuristics matched")
}

func runFindRoot(cmd *cobra.Command, args []string) error {
	reg := registry()

	wanted := heuristics.Recommended
	first := true
	if findAll {
		wanted = reg.All()
		first = false
	}

	start := startPath(args)
	log.Debug("resolving project root", "start", start, "wanted", wanted)

	match, err := reg.FindProjectRoot(start, wanted, first)
	if err != nil {
		return err
	}
	if match == nil {
		cmd.PrintErrln(ErrorStyle.Render("No project root found"))
		cmd.SilenceUsage = true
		return fmt.Errorf("no project root found above %s", start)
	}

	cmd.Println(ValueStyle.Render(match.Root))
	if findAll {
		cmd.Println(SubtitleStyle.Render("matched: ") + match.Matched.String())
	}
	return nil
}
