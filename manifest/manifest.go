// Package manifest records per-build asset generation results.
//
// The manifest has two serializations: YAML for humans (`kiln inspect`)
// and msgpack for the incremental build cache record. Entries are kept
// sorted by source path so both forms are byte-stable for identical
// builds.
package manifest

import (
	"fmt"
	"io"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/kiln-build/kiln/types"
)

// Emission mode labels recorded per asset.
const (
	ModeInline   = "inline"
	ModeResource = "resource"
)

// Asset is one generated module's record.
type Asset struct {
	// Source is the build-root-relative source path.
	Source string `yaml:"source" msgpack:"source"`
	// Mode is the emission mode (inline or resource).
	Mode string `yaml:"mode" msgpack:"mode"`
	// Output is the emitted filename. Empty for inline assets.
	Output string `yaml:"output,omitempty" msgpack:"output,omitempty"`
	// FullHash is the untruncated content hash. Empty for inline assets.
	FullHash string `yaml:"full_hash,omitempty" msgpack:"full_hash,omitempty"`
	// Mimetype is the detected or configured mimetype, for reporting.
	Mimetype string `yaml:"mimetype,omitempty" msgpack:"mimetype,omitempty"`
	// Size is the original content size in bytes.
	Size int64 `yaml:"size" msgpack:"size"`
}

// Manifest is the full per-build record.
type Manifest struct {
	// Version is the manifest format version (lockstep project version).
	Version string `yaml:"version" msgpack:"version"`
	// PublicPath is the configured public base path, for deploy tooling.
	PublicPath string `yaml:"public_path,omitempty" msgpack:"public_path,omitempty"`
	// Assets are the generated modules, sorted by source path.
	Assets []Asset `yaml:"assets" msgpack:"assets"`
}

// New creates an empty manifest at the current format version.
func New(publicPath string) *Manifest {
	return &Manifest{Version: types.Version, PublicPath: publicPath}
}

// Add appends an asset record. Call Sort before serializing.
func (m *Manifest) Add(a Asset) {
	m.Assets = append(m.Assets, a)
}

// Sort orders assets by source path for deterministic output.
func (m *Manifest) Sort() {
	sort.Slice(m.Assets, func(i, j int) bool {
		return m.Assets[i].Source < m.Assets[j].Source
	})
}

// EncodeYAML writes the human-readable form.
func (m *Manifest) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding manifest yaml: %w", err)
	}
	return enc.Close()
}

// Encode writes the msgpack cache record.
func (m *Manifest) Encode(w io.Writer) error {
	if err := msgpack.NewEncoder(w).Encode(m); err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	return nil
}

// Decode reads a msgpack cache record.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := msgpack.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return &m, nil
}
