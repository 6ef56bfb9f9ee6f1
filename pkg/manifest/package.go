// SPDX-License-Identifier: MPL-2.0

package manifest

// Package is the required [package] table of a manifest, storing the
// package's metadata. Each field validates individually on decode; there
// are no cross-field consistency rules (an entrypoint inside an excluded
// path is deliberately not rejected).
type Package struct {
	// Name is the package identifier.
	Name Ident `toml:"name"`

	// Version is the current version of the package.
	Version Version `toml:"version"`

	// Entrypoint is the path to the primary module of the package,
	// relative to the package root.
	Entrypoint string `toml:"entrypoint"`

	// Authors are the authors of the package.
	Authors []Author `toml:"authors"`

	// License is the license expression for the package.
	License License `toml:"license"`

	// Description is a plain-text description of the package.
	Description string `toml:"description"`

	// Homepage is the homepage URL of the package.
	Homepage *Website `toml:"homepage,omitempty"`

	// Repository is the repository URL of the package.
	Repository *Website `toml:"repository,omitempty"`

	// Keywords are free-form search keywords for the package.
	Keywords []string `toml:"keywords,omitempty"`

	// Categories are the categories of the package.
	Categories []Category `toml:"categories,omitempty"`

	// Disciplines are the target audiences of the package.
	Disciplines []Discipline `toml:"disciplines,omitempty"`

	// Compiler is the minimum compiler version required by the package.
	Compiler *Version `toml:"compiler,omitempty"`

	// Exclude lists paths ignored by the package manager's bundler.
	Exclude []string `toml:"exclude,omitempty"`
}
