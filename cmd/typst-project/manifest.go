// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tingerrr/typst-project/pkg/manifest"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest [path]",
	Short: "Show the manifest of the project containing a path",
	Long: `Locates the project containing the given path, reads its typst.toml, and
prints a summary of the parsed manifest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runManifest,
}

func runManifest(cmd *cobra.Command, args []string) error {
	start := startPath(args)

	m, err := manifest.TryFind(start)
	if err != nil {
		return err
	}
	if m == nil {
		cmd.PrintErrln(ErrorStyle.Render("No manifest found"))
		cmd.SilenceUsage = true
		return fmt.Errorf("no manifest found above %s", start)
	}

	printManifest(cmd, m)
	return nil
}

func printManifest(cmd *cobra.Command, m *manifest.Manifest) {
	field := func(label, value string) {
		if value != "" {
			cmd.Println(LabelStyle.Render(label+": ") + ValueStyle.Render(value))
		}
	}

	pkg := m.Package
	cmd.Println(TitleStyle.Render(pkg.Name.String()) + SubtitleStyle.Render(" v"+pkg.Version.String()))
	field("description", pkg.Description)
	field("entrypoint", pkg.Entrypoint)
	field("license", pkg.License.String())

	authors := make([]string, len(pkg.Authors))
	for i, a := range pkg.Authors {
		authors[i] = a.String()
	}
	field("authors", strings.Join(authors, ", "))

	if pkg.Homepage != nil {
		field("homepage", pkg.Homepage.String())
	}
	if pkg.Repository != nil {
		field("repository", pkg.Repository.String())
	}
	if pkg.Compiler != nil {
		field("compiler", pkg.Compiler.String())
	}

	categories := make([]string, len(pkg.Categories))
	for i, c := range pkg.Categories {
		categories[i] = c.String()
	}
	field("categories", strings.Join(categories, ", "))

	disciplines := make([]string, len(pkg.Disciplines))
	for i, d := range pkg.Disciplines {
		disciplines[i] = d.String()
	}
	field("disciplines", strings.Join(disciplines, ", "))

	if m.Template != nil {
		cmd.Println(LabelStyle.Render("template: ") +
			ValueStyle.Render(m.Template.Path+" -> "+m.Template.Entrypoint))
	}
}
