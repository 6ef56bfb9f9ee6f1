// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tingerrr/typst-project/pkg/heuristics"
	"github.com/tingerrr/typst-project/pkg/manifest"
)

var (
	initName     string
	initTemplate bool

	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a skeleton typst.toml in the working directory",
		Long: `Writes a minimal typst.toml into the current working directory. The package
name defaults to the directory name and must satisfy the identifier grammar;
use --name to override it. Fails if a typst.toml already exists.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "package name (default: directory name)")
	initCmd.Flags().BoolVar(&initTemplate, "template", false, "include a [template] section")
}

func runInit(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(heuristics.ManifestFileName); err == nil {
		cmd.SilenceUsage = true
		return fmt.Errorf("%s already exists", heuristics.ManifestFileName)
	}

	rawName := initName
	if rawName == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		rawName = filepath.Base(wd)
	}

	name, err := manifest.ParseIdent(rawName)
	if err != nil {
		cmd.SilenceUsage = true
		return fmt.Errorf("cannot use %q as package name: %w", rawName, err)
	}

	license, err := manifest.ParseLicense("MIT")
	if err != nil {
		return err
	}

	pkg := manifest.Package{
		Name:       name,
		Version:    manifest.MustVersion("0.1.0"),
		Entrypoint: heuristics.LibFileName,
		Authors:    []manifest.Author{},
		License:    license,
	}

	var m *manifest.Manifest
	if initTemplate {
		pkg.Entrypoint = heuristics.MainFileName
		m = manifest.NewWithTemplate(pkg, manifest.Template{
			Path:       "template",
			Entrypoint: heuristics.MainFileName,
			Thumbnail:  "thumbnail.png",
		})
	} else {
		m = manifest.New(pkg)
	}

	data, err := m.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(heuristics.ManifestFileName, data, 0o644); err != nil {
		return err
	}

	cmd.Println(SuccessStyle.Render("✓ ") + "wrote " + ValueStyle.Render(heuristics.ManifestFileName))
	return nil
}
