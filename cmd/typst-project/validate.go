// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tingerrr/typst-project/pkg/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a manifest file",
	Long: `Parses the given typst.toml and reports the first violation found: unknown
keys, malformed TOML, or an identity field breaking its grammar (package
name, author contact, website, license expression).`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if _, err := manifest.Parse(data); err != nil {
		cmd.PrintErrln(ErrorStyle.Render("✗ ") + path + " is invalid")
		cmd.SilenceUsage = true
		return err
	}

	cmd.Println(SuccessStyle.Render("✓ ") + path + " is a valid manifest")
	return nil
}
