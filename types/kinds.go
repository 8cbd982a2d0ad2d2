// Package types defines the shared build vocabulary: output kinds,
// runtime requirement tokens, and the project version.
//
// This is a leaf package with no internal dependencies.
package types

// SourceType identifies an output kind a generator can produce for a module.
type SourceType string

// Output kind constants.
const (
	// SourceTypeJavaScript is the default code kind: a generated JS
	// fragment that binds the asset's value into the bundle.
	SourceTypeJavaScript SourceType = "javascript"
	// SourceTypeAsset is verbatim pass-through: the module's original
	// bytes emitted as a separate build artifact.
	SourceTypeAsset SourceType = "asset"
)

// Valid returns true if t is a recognized output kind.
func (t SourceType) Valid() bool {
	return t == SourceTypeJavaScript || t == SourceTypeAsset
}

// RuntimeRequirement marks a piece of host-provided runtime support that
// generated code depends on.
type RuntimeRequirement string

// Runtime requirement constants.
const (
	// RequirementPublicPath is the runtime-resolved public base path.
	// Required by hashed-resource references, which are relative to it.
	RequirementPublicPath RuntimeRequirement = "public_path"
	// RequirementModule is the module exports container. Required by any
	// module generated outside a concatenation scope.
	RequirementModule RuntimeRequirement = "module"
)

// RequirementSet is an explicit mutable accumulator of runtime requirements.
// The caller owns the set; generators only add to it.
type RequirementSet map[RuntimeRequirement]struct{}

// NewRequirementSet creates an empty requirement set.
func NewRequirementSet() RequirementSet {
	return make(RequirementSet)
}

// Add records a requirement. Adding an existing requirement is a no-op.
func (s RequirementSet) Add(r RuntimeRequirement) {
	s[r] = struct{}{}
}

// Has returns true if the requirement has been recorded.
func (s RequirementSet) Has(r RuntimeRequirement) bool {
	_, ok := s[r]
	return ok
}
