// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/tingerrr/typst-project/pkg/heuristics"
)

// Sentinel errors distinguishing the manifest error kinds. I/O errors from
// discovery and file reads are propagated verbatim, never wrapped in these.
var (
	// ErrDeserialize is wrapped by every failure to decode a manifest
	// document, including unknown keys and field grammar violations.
	ErrDeserialize = errors.New("deserialization failed")
	// ErrSerialize is wrapped by every failure to encode a manifest.
	ErrSerialize = errors.New("serialization failed")
)

// Tool is the optional [tool] table, an opaque pass-through for third-party
// configuration keyed by tool name.
type Tool map[string]map[string]any

// Manifest is a typst.toml manifest.
type Manifest struct {
	// Package stores the package's metadata.
	Package Package `toml:"package"`

	// Template stores a template package's metadata, if any.
	Template *Template `toml:"template,omitempty"`

	// Tool stores third-party tool configuration, if any.
	Tool Tool `toml:"tool,omitempty"`
}

// New returns a manifest containing only package metadata.
func New(pkg Package) *Manifest {
	return &Manifest{Package: pkg}
}

// NewWithTemplate returns a manifest for a template package.
func NewWithTemplate(pkg Package, tpl Template) *Manifest {
	return &Manifest{Package: pkg, Template: &tpl}
}

// requiredPackageKeys are the [package] keys a manifest must carry.
var requiredPackageKeys = []string{
	"name", "version", "entrypoint", "authors", "license", "description",
}

// requiredTemplateKeys are the keys a [template] table must carry, if
// present.
var requiredTemplateKeys = []string{"path", "entrypoint", "thumbnail"}

// checkRequiredKeys reports missing required keys, which the struct decoder
// silently fills with zero values.
func checkRequiredKeys(data []byte) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return err
	}

	pkg, ok := raw["package"].(map[string]any)
	if !ok {
		return errors.New("missing key 'package'")
	}
	for _, key := range requiredPackageKeys {
		if _, ok := pkg[key]; !ok {
			return fmt.Errorf("missing key 'package.%s'", key)
		}
	}

	if tpl, ok := raw["template"].(map[string]any); ok {
		for _, key := range requiredTemplateKeys {
			if _, ok := tpl[key]; !ok {
				return fmt.Errorf("missing key 'template.%s'", key)
			}
		}
	}

	return nil
}

// Parse decodes a manifest from the contents of a manifest file. Decoding
// is strict: unknown keys outside the [tool] table are rejected, required
// keys must be present. Failures wrap ErrDeserialize and retain the
// underlying diagnostic.
func Parse(data []byte) (*Manifest, error) {
	if err := checkRequiredKeys(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialize, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialize, err)
	}
	return &m, nil
}

// ParseString decodes a manifest from a string. See Parse.
func ParseString(s string) (*Manifest, error) {
	return Parse([]byte(s))
}

// Marshal encodes the manifest as TOML. Empty optional fields are omitted
// and reconstructed as their zero values on decode. Failures wrap
// ErrSerialize.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return data, nil
}

// TryFind locates and parses the manifest for the project containing path.
// The project root is resolved with the manifest-file heuristic only; a
// relative path only exposes the ancestors spelled in it, see
// heuristics.FindProjectRoot.
//
// A nil manifest with a nil error means no project root was found. An
// error is returned if root resolution fails, the manifest file cannot be
// read, or its contents cannot be parsed.
func TryFind(path string) (*Manifest, error) {
	match, err := heuristics.Default().FindProjectRoot(path, heuristics.ManifestFile, true)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, nil
	}

	data, err := os.ReadFile(filepath.Join(match.Root, heuristics.ManifestFileName))
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
