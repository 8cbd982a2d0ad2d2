package assetgen

import (
	"github.com/kiln-build/kiln/graph"
	"github.com/kiln-build/kiln/hashing"
	"github.com/kiln-build/kiln/types"
)

// Size estimation constants for the code kind.
const (
	// base64Expansion approximates base64 growth of inlined content.
	base64Expansion = 1.34
	// dataURLOverhead covers the data URL prefix and binding wrapper.
	dataURLOverhead = 36.0
	// resourceRefEstimate is the coarse fixed cost of a hashed-path
	// reference. A heuristic for size-based decisions, not exact.
	resourceRefEstimate = 42.0
)

// Mode discriminator tokens mixed into the build-cache hash.
const (
	hashTokenInline   = "inline"
	hashTokenResource = "resource"
)

// Types returns the output kinds available for the module's current
// state. Pure in the inline flag: inline modules generate only code,
// non-inline modules additionally expose the verbatim asset kind.
func (g *Generator) Types(module *graph.AssetModule) []types.SourceType {
	if module.Inline {
		return []types.SourceType{types.SourceTypeJavaScript}
	}
	return []types.SourceType{types.SourceTypeJavaScript, types.SourceTypeAsset}
}

// Size estimates the byte cost of the given output kind for the module.
// The asset kind reports the exact content size; the code kind reports a
// base64-expansion estimate for inline modules and a fixed reference
// estimate otherwise.
func (g *Generator) Size(module *graph.AssetModule, t types.SourceType) float64 {
	var contentSize int64
	if module.Source != nil {
		contentSize = module.Source.Size()
	}

	if t == types.SourceTypeAsset {
		return float64(contentSize)
	}
	if module.Inline {
		return float64(contentSize)*base64Expansion + dataURLOverhead
	}
	return resourceRefEstimate
}

// UpdateHash mixes the module's emission mode into a caller-owned running
// hash, so the build cache can distinguish output generated under a
// different mode even when content and all other hash inputs are
// unchanged. Content and filename are deliberately not mixed in; they
// flow into the module's own content hash elsewhere.
func (g *Generator) UpdateHash(h *hashing.Hasher, module *graph.AssetModule) {
	if module.Inline {
		h.WriteString(hashTokenInline)
	} else {
		h.WriteString(hashTokenResource)
	}
}

// ConcatenationBailoutReason returns a non-empty reason when the module
// cannot be merged into a containing scope. Resource-mode modules emit a
// separate file and depend on emitted-file bookkeeping, so only inline
// modules are eligible.
func (g *Generator) ConcatenationBailoutReason(module *graph.AssetModule) string {
	if module.Inline {
		return ""
	}
	return "Module emits a separate content-hashed asset file"
}
