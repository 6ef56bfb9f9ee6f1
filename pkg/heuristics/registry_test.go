// SPDX-License-Identifier: MPL-2.0

package heuristics

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates the given files (and their parent directories) under
// root. Paths use forward slashes.
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestMatchDirectory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		files  []string
		dirs   []string
		wanted Heuristics
		first  bool
		want   Heuristics
	}{
		{
			name:   "manifest file",
			files:  []string{"typst.toml"},
			wanted: ManifestFile,
			first:  true,
			want:   ManifestFile,
		},
		{
			name:   "no recognized marker",
			files:  []string{"readme.md"},
			wanted: ManifestFile | MainFile | LibFile,
			first:  true,
			want:   0,
		},
		{
			name:   "marker outside wanted set is ignored",
			files:  []string{"main.typ"},
			wanted: ManifestFile,
			first:  true,
			want:   0,
		},
		{
			name:   "accumulates until wanted satisfied",
			files:  []string{"typst.toml", "main.typ", "lib.typ"},
			wanted: ManifestFile | MainFile,
			first:  false,
			want:   ManifestFile | MainFile,
		},
		{
			name:   "entrypoint under src sets shared bit",
			files:  []string{"src/main.typ"},
			wanted: MainFile | LibFile | InSrcFolder,
			first:  true,
			want:   MainFile | InSrcFolder,
		},
		{
			name:   "src not descended without capability",
			files:  []string{"src/main.typ"},
			wanted: MainFile | LibFile,
			first:  true,
			want:   0,
		},
		{
			name:   "directory named like a marker is ignored",
			dirs:   []string{"typst.toml"},
			wanted: ManifestFile,
			first:  true,
			want:   0,
		},
		{
			name:   "subdirectory inside src aborts the branch",
			files:  []string{"src/aaa/nested.typ", "src/main.typ"},
			wanted: MainFile | InSrcFolder,
			first:  true,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			writeTree(t, root, tt.files...)
			for _, d := range tt.dirs {
				if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
					t.Fatal(err)
				}
			}

			got, err := Default().MatchDirectory(root, tt.wanted, tt.first)
			if err != nil {
				t.Fatalf("MatchDirectory() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MatchDirectory() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchDirectory_FirstStopsEarly(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, "typst.toml", "main.typ", "lib.typ")

	got, err := Default().MatchDirectory(root, ManifestFile|MainFile|LibFile, true)
	if err != nil {
		t.Fatal(err)
	}

	// With first set, exactly one marker is reported regardless of how many
	// are present.
	count := 0
	for _, h := range []Heuristics{ManifestFile, MainFile, LibFile} {
		if got.Contains(h) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("MatchDirectory(first=true) = %v, want exactly one marker", got)
	}
}

func TestMatchDirectory_ReadError(t *testing.T) {
	t.Parallel()

	_, err := Default().MatchDirectory(filepath.Join(t.TempDir(), "missing"), ManifestFile, true)
	if err == nil {
		t.Fatal("expected error for unreadable directory")
	}
}

func TestFindProjectRoot(t *testing.T) {
	t.Parallel()

	t.Run("resolves from nested directory", func(t *testing.T) {
		t.Parallel()

		tmp := t.TempDir()
		writeTree(t, tmp, "proj/typst.toml", "proj/sub/note.typ")

		match, err := Default().FindProjectRoot(
			filepath.Join(tmp, "proj", "sub"), ManifestFile, true)
		if err != nil {
			t.Fatal(err)
		}
		if match == nil {
			t.Fatal("expected a match")
		}
		if want := filepath.Join(tmp, "proj"); match.Root != want {
			t.Errorf("Root = %q, want %q", match.Root, want)
		}
		if match.Matched != ManifestFile {
			t.Errorf("Matched = %v, want %v", match.Matched, ManifestFile)
		}
	})

	t.Run("nearest ancestor wins", func(t *testing.T) {
		t.Parallel()

		tmp := t.TempDir()
		writeTree(t, tmp, "outer/typst.toml", "outer/inner/typst.toml")

		match, err := Default().FindProjectRoot(
			filepath.Join(tmp, "outer", "inner"), ManifestFile, true)
		if err != nil {
			t.Fatal(err)
		}
		if match == nil {
			t.Fatal("expected a match")
		}
		if want := filepath.Join(tmp, "outer", "inner"); match.Root != want {
			t.Errorf("Root = %q, want %q", match.Root, want)
		}
	})

	t.Run("no marker yields nil match without error", func(t *testing.T) {
		t.Parallel()

		tmp := t.TempDir()
		writeTree(t, tmp, "a/b/file.txt")

		match, err := Default().FindProjectRoot(
			filepath.Join(tmp, "a", "b"), Recommended, true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if match != nil {
			t.Errorf("expected nil match, got %+v", match)
		}
	})

	t.Run("walk stops at first directory with any match", func(t *testing.T) {
		t.Parallel()

		tmp := t.TempDir()
		writeTree(t, tmp, "proj/typst.toml", "proj/sub/main.typ")

		// sub matches MainFile, so the walk never reaches proj even though
		// the manifest marker remains unsatisfied.
		match, err := Default().FindProjectRoot(
			filepath.Join(tmp, "proj", "sub"), ManifestFile|MainFile, false)
		if err != nil {
			t.Fatal(err)
		}
		if match == nil {
			t.Fatal("expected a match")
		}
		if want := filepath.Join(tmp, "proj", "sub"); match.Root != want {
			t.Errorf("Root = %q, want %q", match.Root, want)
		}
		if match.Matched != MainFile {
			t.Errorf("Matched = %v, want %v", match.Matched, MainFile)
		}
	})
}

func TestFindProjectRoot_LiteralRelativePath(t *testing.T) {
	tmp := t.TempDir()
	writeTree(t, tmp, "typst.toml", "proj/sub/file.typ")
	t.Chdir(filepath.Join(tmp, "proj"))

	// The relative path "sub" only exposes "sub" and "."; the manifest two
	// levels up is out of reach.
	match, err := Default().FindProjectRoot("sub", ManifestFile, true)
	if err != nil {
		t.Fatal(err)
	}
	if match != nil {
		t.Errorf("expected nil match for relative path, got %+v", match)
	}

	t.Chdir(tmp)
	match, err = Default().FindProjectRoot(filepath.Join("proj", "sub"), ManifestFile, true)
	if err != nil {
		t.Fatal(err)
	}
	if match == nil {
		t.Fatal("expected the walk to reach \".\"")
	}
	if match.Root != "." {
		t.Errorf("Root = %q, want %q", match.Root, ".")
	}
}

func TestIsProjectRoot(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	writeTree(t, tmp, "proj/typst.toml", "proj/sub/file.typ")

	ok, err := IsProjectRoot(filepath.Join(tmp, "proj"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("proj should be a project root")
	}

	ok, err = IsProjectRoot(filepath.Join(tmp, "proj", "sub"))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("proj/sub should not be a project root")
	}
}

func TestRegistry_FormatterConfigMarker(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	writeTree(t, tmp, "typstfmt.toml")

	// The default registry does not know the marker.
	got, err := Default().MatchDirectory(tmp, Default().All(), true)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsEmpty() {
		t.Errorf("default registry matched %v, want none", got)
	}

	reg := New(Options{FormatterConfig: true})
	got, err = reg.MatchDirectory(tmp, reg.All(), true)
	if err != nil {
		t.Fatal(err)
	}
	if got != FormatterConfig {
		t.Errorf("MatchDirectory() = %v, want %v", got, FormatterConfig)
	}
}
