// SPDX-License-Identifier: MPL-2.0

package manifest

// Template is the optional [template] table of a manifest, storing a
// template package's metadata. Given a template package laid out as
//
//	.
//	├ typst.toml
//	├ assets
//	│ └ thumbnail.png
//	└ template
//	  ├ chapters
//	  │ ├ chapter-1.typ
//	  │ └ chapter-2.typ
//	  └ main.typ
//
// the manifest would contain
//
//	[template]
//	path = "template"
//	entrypoint = "chapters/chapter-1.typ"
//	thumbnail = "assets/thumbnail.png"
type Template struct {
	// Path points to the directory, relative to the package root, whose
	// files are copied into the user's new project directory.
	Path string `toml:"path"`

	// Entrypoint points to the compilation target, relative to Path.
	Entrypoint string `toml:"entrypoint"`

	// Thumbnail points to a PNG or lossless WebP thumbnail for the
	// template, relative to the package root.
	Thumbnail string `toml:"thumbnail"`
}
