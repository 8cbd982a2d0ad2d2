package graph

import "fmt"

// AssetInfo is an opaque key/value bag attached to an emitted asset for
// downstream reporting (manifest, stats).
type AssetInfo map[string]any

// Clone returns a shallow copy so readers cannot mutate stored info.
func (i AssetInfo) Clone() AssetInfo {
	if i == nil {
		return nil
	}
	out := make(AssetInfo, len(i))
	for k, v := range i {
		out[k] = v
	}
	return out
}

// BuildInfo is the per-module record of generation results.
//
// The resource fields (filename, asset info, full content hash) are either
// all unset (asset pass-through and data URL modes) or all set together
// (resource mode); never partially set. They are written at most once per
// build pass, by the generator only. Access is not synchronized; the build
// orchestrator must not run concurrent generate calls for the same module.
type BuildInfo struct {
	filename  string
	assetInfo AssetInfo
	fullHash  string
	resolved  bool
}

// SetResource records the resource emission results as a unit.
// Returns an error on a second write within the same pass, enforcing the
// single-writer, write-once invariant.
func (b *BuildInfo) SetResource(filename string, info AssetInfo, fullHash string) error {
	if b.resolved {
		return fmt.Errorf("build info already resolved to %q", b.filename)
	}
	b.filename = filename
	b.assetInfo = info
	b.fullHash = fullHash
	b.resolved = true
	return nil
}

// HasResource returns true if the resource fields have been set.
func (b *BuildInfo) HasResource() bool { return b.resolved }

// Filename returns the resolved output filename. Empty until SetResource.
func (b *BuildInfo) Filename() string { return b.filename }

// AssetInfo returns a copy of the attached asset metadata.
func (b *BuildInfo) AssetInfo() AssetInfo { return b.assetInfo.Clone() }

// FullContentHash returns the untruncated content hash. Empty until
// SetResource.
func (b *BuildInfo) FullContentHash() string { return b.fullHash }

// Reset clears the resource fields for a new build pass. Called by the
// build orchestrator between passes, never by the generator.
func (b *BuildInfo) Reset() {
	b.filename = ""
	b.assetInfo = nil
	b.fullHash = ""
	b.resolved = false
}
