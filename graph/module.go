// Package graph holds the module-side build structures the generator
// queries and writes: asset modules, their build-info records, the
// chunk graph view, and concatenation scopes.
//
// The surrounding build orchestrator owns these structures. The generator
// only reads them, except for the build-info record which Resource-mode
// generation populates exactly once per build pass.
package graph

import (
	"github.com/kiln-build/kiln/source"
)

// AssetModule is a single asset build unit: an arbitrary binary or text
// file tracked by the bundler.
type AssetModule struct {
	// Source is the original content. Immutable, never nil for a module
	// handed to the generator.
	Source source.Source
	// ResourcePath is the matched/resolved identifier of the asset,
	// relative to the build root (e.g. "./images/logo.png").
	ResourcePath string
	// Inline marks the asset for self-contained data URL embedding
	// instead of separate file emission.
	Inline bool
	// BuildInfo carries generation results for later build stages.
	BuildInfo BuildInfo
}

// ChunkGraph is the query-only chunk membership view handed to generators.
// Generators never mutate it.
type ChunkGraph struct {
	modules []*AssetModule
}

// NewChunkGraph creates an empty chunk graph.
func NewChunkGraph() *ChunkGraph {
	return &ChunkGraph{}
}

// AddModule registers a module. Called by the build orchestrator only,
// before generation starts.
func (g *ChunkGraph) AddModule(m *AssetModule) {
	g.modules = append(g.modules, m)
}

// Modules returns the registered modules in registration order.
func (g *ChunkGraph) Modules() []*AssetModule {
	return g.modules
}

// ModuleCount returns the number of registered modules.
func (g *ChunkGraph) ModuleCount() int {
	return len(g.modules)
}

// ConcatenationScope tracks the exports of a module being inlined into a
// containing scope. Present on a generate call iff the module is being
// concatenated rather than wrapped standalone.
type ConcatenationScope struct {
	namespaceExports map[string]struct{}
}

// NewConcatenationScope creates an empty concatenation scope.
func NewConcatenationScope() *ConcatenationScope {
	return &ConcatenationScope{namespaceExports: make(map[string]struct{})}
}

// RegisterNamespaceExport records that the module's namespace object is
// bound to the given local symbol inside the containing scope.
func (s *ConcatenationScope) RegisterNamespaceExport(symbol string) {
	s.namespaceExports[symbol] = struct{}{}
}

// HasNamespaceExport returns true if the symbol was registered.
func (s *ConcatenationScope) HasNamespaceExport(symbol string) bool {
	_, ok := s.namespaceExports[symbol]
	return ok
}
