package assetgen

import (
	"fmt"
	"strings"

	"github.com/kiln-build/kiln/codegen"
	"github.com/kiln-build/kiln/graph"
	"github.com/kiln-build/kiln/hashing"
	"github.com/kiln-build/kiln/pathtpl"
	"github.com/kiln-build/kiln/types"
)

// resourceValue computes the content-derived filename for a non-inlined
// asset, records the emission results on build-info, and returns the
// runtime expression referencing the emitted file.
//
// Determinism: identical bytes and identical hash/template settings yield
// the identical filename and full hash across calls and process restarts.
func (g *Generator) resourceValue(module *graph.AssetModule, ctx *GenerateContext) (string, error) {
	hasher, err := hashing.New(g.opts.HashFunction)
	if err != nil {
		return "", fmt.Errorf("resource hash setup: %w", err)
	}
	// Salt first, then content, so salted and unsalted streams never
	// collide on a shared prefix.
	if g.opts.HashSalt != "" {
		hasher.WriteString(g.opts.HashSalt)
	}
	if _, err := hasher.Write(module.Source.Bytes()); err != nil {
		return "", err
	}
	fullHash, err := hasher.Digest(g.opts.HashDigest)
	if err != nil {
		return "", fmt.Errorf("resource hash digest: %w", err)
	}
	contentHash := hashing.Truncate(fullHash, g.opts.HashDigestLength)

	sourcePath := strings.TrimPrefix(module.ResourcePath, "./")
	filename, err := pathtpl.Resolve(g.opts.FilenameTemplate, pathtpl.Data{
		ContentHash: contentHash,
		Path:        sourcePath,
	})
	if err != nil {
		return "", err
	}

	info := graph.AssetInfo{
		"immutable":      true,
		"contenthash":    contentHash,
		"sourceFilename": sourcePath,
	}
	if err := module.BuildInfo.SetResource(filename, info, fullHash); err != nil {
		return "", err
	}

	// The emitted reference is relative to the runtime-configured public
	// base path.
	ctx.RuntimeRequirements.Add(types.RequirementPublicPath)

	return codegen.PublicPathConcat(filename), nil
}
