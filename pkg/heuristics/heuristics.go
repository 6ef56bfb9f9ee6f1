// SPDX-License-Identifier: MPL-2.0

// Package heuristics locates typst project roots by matching marker files
// against a directory's entries. A project root is any directory containing
// at least one recognized marker: the typst.toml manifest, a main.typ or
// lib.typ entrypoint (at the root or one level under a src/ folder), or an
// optional formatter config file.
//
// The package exposes both a configurable Registry and package-level
// convenience functions that use the default registry with the recommended
// heuristic set.
package heuristics

import "strings"

// Marker file names recognized by the default registry.
const (
	// ManifestFileName is the name of the typst manifest file.
	ManifestFileName = "typst.toml"
	// MainFileName is the conventional document entrypoint.
	MainFileName = "main.typ"
	// LibFileName is the conventional package entrypoint.
	LibFileName = "lib.typ"
	// SrcDirName is the source folder searched for nested entrypoints.
	SrcDirName = "src"
	// DefaultFormatterConfigName is the typstfmt config file name.
	DefaultFormatterConfigName = "typstfmt.toml"
)

// Heuristics is a bit-flag set of project root heuristics.
type Heuristics uint32

const (
	// ManifestFile is set when a typst.toml manifest file was found.
	ManifestFile Heuristics = 1 << iota
	// MainFile is set when a main.typ entrypoint was found.
	MainFile
	// LibFile is set when a lib.typ entrypoint was found.
	LibFile
	// InSrcFolder is set alongside MainFile or LibFile when the entrypoint
	// was found one level below the root, inside a src/ folder.
	InSrcFolder
	// FormatterConfig is set when a formatter config file was found. The
	// default registry does not carry this marker; see Options.
	FormatterConfig
)

// Recommended is the heuristic subset used by the package-level lookup
// functions. Only the manifest file reliably identifies a project root;
// entrypoint files also occur in subdirectories of larger projects.
const Recommended = ManifestFile

var flagNames = []struct {
	flag Heuristics
	name string
}{
	{ManifestFile, "ManifestFile"},
	{MainFile, "MainFile"},
	{LibFile, "LibFile"},
	{InSrcFolder, "InSrcFolder"},
	{FormatterConfig, "FormatterConfig"},
}

// Contains reports whether every flag in other is set in h.
func (h Heuristics) Contains(other Heuristics) bool {
	return h&other == other
}

// IsEmpty reports whether no flag is set.
func (h Heuristics) IsEmpty() bool {
	return h == 0
}

// String renders the set as "ManifestFile|MainFile" style diagnostics.
func (h Heuristics) String() string {
	if h.IsEmpty() {
		return "none"
	}

	var parts []string
	for _, fn := range flagNames {
		if h.Contains(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}
