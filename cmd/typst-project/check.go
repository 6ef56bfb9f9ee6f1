// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tingerrr/typst-project/pkg/heuristics"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Test whether a directory is a project root",
	Long: `Tests whether the given directory itself matches a project marker. Unlike
'root', no ancestors are inspected. Exits with status 0 when the directory is
a project root and 1 when it is not.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := startPath(args)

	reg := registry()
	matched, err := reg.MatchDirectory(dir, heuristics.Recommended, true)
	if err != nil {
		return err
	}
	log.Debug("checked directory", "dir", dir, "matched", matched)

	if matched.IsEmpty() {
		cmd.Println(ErrorStyle.Render("✗ ") + dir + " is not a project root")
		cmd.SilenceUsage = true
		return fmt.Errorf("%s is not a project root", dir)
	}

	cmd.Println(SuccessStyle.Render("✓ ") + dir + " is a project root")
	return nil
}
