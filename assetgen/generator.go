package assetgen

import (
	"fmt"

	"github.com/kiln-build/kiln/codegen"
	"github.com/kiln-build/kiln/graph"
	"github.com/kiln-build/kiln/source"
	"github.com/kiln-build/kiln/types"
)

// Generator turns asset modules into build artifacts. One Generator is
// constructed per asset rule and reused across modules; it holds no
// per-module state.
//
// All methods are synchronous and CPU-bound. Generate writes the module's
// build-info in resource mode; the build orchestrator must not run
// concurrent Generate calls for the same module. Every other method is a
// pure read and safe for concurrent use.
type Generator struct {
	opts Options
}

// New creates a Generator with the given options.
func New(opts Options) *Generator {
	return &Generator{opts: opts}
}

// GenerateContext is the per-call generation context. Read-only for the
// generator except RuntimeRequirements, which it appends to.
type GenerateContext struct {
	// Type is the requested output kind.
	Type types.SourceType
	// Runtime identifies the runtime target the code is generated for.
	Runtime string
	// ChunkGraph is the query-only chunk membership view.
	ChunkGraph *graph.ChunkGraph
	// RuntimeRequirements is the caller-owned accumulator of runtime
	// support tokens the generated code depends on.
	RuntimeRequirements types.RequirementSet
	// ConcatenationScope is non-nil iff the module is being inlined into
	// a containing scope rather than wrapped standalone.
	ConcatenationScope *graph.ConcatenationScope
}

// outputMode is the emission mode, computed once per Generate call from
// the requested kind and the module's inline flag.
type outputMode int

const (
	// modeAsset emits the original bytes verbatim as a separate artifact.
	modeAsset outputMode = iota
	// modeDataURL embeds the content as a data URL literal in code.
	modeDataURL
	// modeResource emits a content-hash-named file and references it by
	// a runtime-resolved path expression.
	modeResource
)

// selectMode picks the emission mode. A requested "asset" kind always
// wins; otherwise the inline flag decides between data URL and resource.
func selectMode(requested types.SourceType, inline bool) outputMode {
	if requested == types.SourceTypeAsset {
		return modeAsset
	}
	if inline {
		return modeDataURL
	}
	return modeResource
}

// Generate produces the artifact for the requested output kind: the
// verbatim original content for "asset", or a generated JS fragment for
// the code kind. Configuration errors abort the call.
//
// The host must only request kinds advertised by Types for the module's
// current state.
func (g *Generator) Generate(module *graph.AssetModule, ctx *GenerateContext) (source.Source, error) {
	switch selectMode(ctx.Type, module.Inline) {
	case modeAsset:
		return module.Source, nil
	case modeDataURL:
		literal, err := g.dataURL(module)
		if err != nil {
			return nil, err
		}
		return g.emit(codegen.JSString(literal), ctx), nil
	case modeResource:
		value, err := g.resourceValue(module, ctx)
		if err != nil {
			return nil, err
		}
		return g.emit(value, ctx), nil
	default:
		return nil, fmt.Errorf("unreachable output mode")
	}
}

// emit binds a pure value expression into the surrounding program: as a
// namespace-export const declaration when a concatenation scope is active,
// otherwise as an assignment to the module exports container.
func (g *Generator) emit(value string, ctx *GenerateContext) source.Source {
	if ctx.ConcatenationScope != nil {
		ctx.ConcatenationScope.RegisterNamespaceExport(codegen.NamespaceObjectExport)
		return source.NewTextSource(codegen.ConstDecl(codegen.NamespaceObjectExport, value))
	}
	ctx.RuntimeRequirements.Add(types.RequirementModule)
	return source.NewTextSource(codegen.ExportsAssign(value))
}
