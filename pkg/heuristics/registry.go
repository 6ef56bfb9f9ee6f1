// SPDX-License-Identifier: MPL-2.0

package heuristics

import (
	"os"
	"path/filepath"
)

type entry struct {
	name  string
	flags Heuristics
}

// Registry is an ordered table of marker files. Table order is the tie-break
// when several markers could describe the same entry name. A Registry is
// immutable after construction and safe for concurrent use.
type Registry struct {
	rootFiles []entry
	srcFiles  []entry
}

// Options selects the optional markers a Registry carries. The zero value
// yields the default registry (manifest and entrypoint markers only).
type Options struct {
	// FormatterConfig adds the formatter config marker.
	FormatterConfig bool
	// FormatterConfigName overrides the formatter config file name.
	// Empty means DefaultFormatterConfigName.
	FormatterConfigName string
}

// New builds a Registry with the markers selected by opts.
func New(opts Options) *Registry {
	r := &Registry{
		rootFiles: []entry{
			{ManifestFileName, ManifestFile},
			{MainFileName, MainFile},
			{LibFileName, LibFile},
		},
		srcFiles: []entry{
			{MainFileName, MainFile | InSrcFolder},
			{LibFileName, LibFile | InSrcFolder},
		},
	}

	if opts.FormatterConfig {
		name := opts.FormatterConfigName
		if name == "" {
			name = DefaultFormatterConfigName
		}
		r.rootFiles = append(r.rootFiles, entry{name, FormatterConfig})
	}

	return r
}

// Default returns the registry with the manifest and entrypoint markers.
func Default() *Registry {
	return New(Options{})
}

// All returns the union of every heuristic this registry can match.
func (r *Registry) All() Heuristics {
	var all Heuristics
	for _, e := range r.rootFiles {
		all |= e.flags
	}
	for _, e := range r.srcFiles {
		all |= e.flags
	}
	return all
}

// lookup returns the flags of the first table entry whose name equals name,
// restricted to markers fully contained in wanted.
func lookup(table []entry, name string, wanted Heuristics) Heuristics {
	for _, e := range table {
		if wanted.Contains(e.flags) && e.name == name {
			return e.flags
		}
	}
	return 0
}

// Match is a resolved project root together with the heuristics that
// identified it.
type Match struct {
	// Root is the matched ancestor, spelled as given (never made absolute).
	Root string
	// Matched is the subset of the wanted heuristics found in Root.
	Matched Heuristics
}

// MatchDirectory matches the wanted heuristics against the entries of a
// single directory. If first is true, matching stops at the first marker
// found; otherwise entries accumulate until the matched set equals wanted or
// the listing is exhausted.
//
// Errors from listing the directory or classifying its entries propagate
// verbatim; the scan is not fault tolerant.
func (r *Registry) MatchDirectory(dir string, wanted Heuristics, first bool) (Heuristics, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	var matched Heuristics
	for _, ent := range entries {
		flags, err := r.matchEntry(dir, ent, wanted)
		if err != nil {
			return 0, err
		}
		if flags.IsEmpty() {
			continue
		}

		matched |= flags
		if first || matched == wanted {
			break
		}
	}

	return matched, nil
}

func (r *Registry) matchEntry(dir string, ent os.DirEntry, wanted Heuristics) (Heuristics, error) {
	if ent.IsDir() {
		if ent.Name() == SrcDirName && wanted.Contains(InSrcFolder) {
			return r.matchSrcDir(filepath.Join(dir, ent.Name()), wanted)
		}
		return 0, nil
	}

	if !ent.Type().IsRegular() {
		return 0, nil
	}

	return lookup(r.rootFiles, ent.Name(), wanted), nil
}

// matchSrcDir performs the one-level lookup inside a src/ folder. Only the
// entrypoint markers are searched, and the branch yields no match as soon as
// a non-file entry is encountered.
func (r *Registry) matchSrcDir(dir string, wanted Heuristics) (Heuristics, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	for _, ent := range entries {
		if !ent.Type().IsRegular() {
			return 0, nil
		}
		if flags := lookup(r.srcFiles, ent.Name(), wanted); !flags.IsEmpty() {
			return flags, nil
		}
	}

	return 0, nil
}

// IsProjectRoot reports whether dir itself matches any of the wanted
// heuristics.
func (r *Registry) IsProjectRoot(dir string, wanted Heuristics) (bool, error) {
	matched, err := r.MatchDirectory(dir, wanted, true)
	if err != nil {
		return false, err
	}
	return !matched.IsEmpty(), nil
}

// FindProjectRoot walks path and its ancestors from nearest to farthest and
// returns the first ancestor matching any of the wanted heuristics, together
// with the matched subset. The walk stops at the first directory with any
// match, even when wanted was not fully satisfied.
//
// The path is taken literally, never resolved to an absolute path first: a
// relative path walks the ancestors spelled in it and ends at ".", so the
// current working directory is the final ancestor of every relative path and
// directories above it are not scanned. A nil Match with a nil error means
// no ancestor matched.
func (r *Registry) FindProjectRoot(path string, wanted Heuristics, first bool) (*Match, error) {
	for dir := path; ; {
		matched, err := r.MatchDirectory(dir, wanted, first)
		if err != nil {
			return nil, err
		}
		if !matched.IsEmpty() {
			return &Match{Root: dir, Matched: matched}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// FindProjectRoot walks path and its ancestors using the default registry
// and the recommended heuristic set, returning the first matching ancestor
// or nil if none matches.
func FindProjectRoot(path string) (*Match, error) {
	return Default().FindProjectRoot(path, Recommended, true)
}

// IsProjectRoot reports whether path itself is a project root according to
// the default registry and the recommended heuristic set.
func IsProjectRoot(path string) (bool, error) {
	return Default().IsProjectRoot(path, Recommended)
}
