// Package build runs the pack pipeline: it walks an asset directory,
// applies config rules, drives the generator per module, and writes the
// emitted files, generated JS fragments, and the build manifest.
//
// The pipeline is the single writer of module build-info: modules are
// generated sequentially, satisfying the generator's concurrency contract.
package build

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kiln-build/kiln/assetgen"
	"github.com/kiln-build/kiln/config"
	"github.com/kiln-build/kiln/graph"
	"github.com/kiln-build/kiln/iox"
	"github.com/kiln-build/kiln/log"
	"github.com/kiln-build/kiln/manifest"
	"github.com/kiln-build/kiln/mediatype"
	"github.com/kiln-build/kiln/metrics"
	"github.com/kiln-build/kiln/source"
	"github.com/kiln-build/kiln/types"
)

// Manifest filenames written into the output directory.
const (
	ManifestYAML = "manifest.yaml"
	ManifestBin  = "manifest.bin"
	// FragmentDir holds the generated JS fragments, mirroring the
	// source layout.
	FragmentDir = "fragments"
)

// Pipeline packs one asset directory under one configuration.
type Pipeline struct {
	cfg     *config.Config
	logger  *log.Logger
	metrics *metrics.Collector
}

// Result reports a completed build.
type Result struct {
	Manifest *manifest.Manifest
	Stats    metrics.Snapshot
}

// New creates a pipeline. logger may be nil for silent operation in tests.
func New(cfg *config.Config, logger *log.Logger, collector *metrics.Collector) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger, metrics: collector}
}

// Run packs srcDir into the configured output directory.
// Configuration errors abort the build and propagate unrecovered.
func (p *Pipeline) Run(srcDir string) (*Result, error) {
	modules, rules, err := p.collect(srcDir)
	if err != nil {
		return nil, err
	}
	if len(modules) == 0 && p.logger != nil {
		p.logger.Warn("no assets matched any rule", map[string]any{"dir": srcDir})
	}

	outDir := p.cfg.OutputDir
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	chunkGraph := graph.NewChunkGraph()
	for _, m := range modules {
		chunkGraph.AddModule(m)
	}

	man := manifest.New(p.cfg.PublicPath)
	for i, module := range chunkGraph.Modules() {
		if err := p.generateModule(module, rules[i], chunkGraph, man); err != nil {
			return nil, err
		}
	}
	man.Sort()

	if err := p.writeManifest(outDir, man); err != nil {
		return nil, err
	}

	result := &Result{Manifest: man, Stats: p.metrics.Snapshot()}
	if p.logger != nil {
		p.logger.Info("build complete", map[string]any{
			"modules":       result.Stats.ModulesProcessed,
			"inlined":       result.Stats.ModulesInlined,
			"emitted":       result.Stats.AssetsEmitted,
			"bytes_emitted": result.Stats.BytesEmitted,
		})
	}
	return result, nil
}

// collect walks srcDir and builds a module per matched file, pairing each
// with its rule. Walk order is deterministic (WalkDir is lexical).
func (p *Pipeline) collect(srcDir string) ([]*graph.AssetModule, []*config.Rule, error) {
	var modules []*graph.AssetModule
	var rules []*config.Rule

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != srcDir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		rule := p.cfg.Match(rel)
		if rule == nil {
			if p.logger != nil {
				p.logger.Debug("no rule for asset", map[string]any{"path": rel})
			}
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading asset %s: %w", rel, err)
		}

		modules = append(modules, &graph.AssetModule{
			Source:       source.NewRawSource(data),
			ResourcePath: "./" + rel,
			Inline:       rule.ShouldInline(int64(len(data))),
		})
		rules = append(rules, rule)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking %s: %w", srcDir, err)
	}
	return modules, rules, nil
}

// generateModule runs one module through the generator and writes its
// outputs: the JS fragment always, plus the emitted asset file in
// resource mode.
func (p *Pipeline) generateModule(module *graph.AssetModule, rule *config.Rule, chunkGraph *graph.ChunkGraph, man *manifest.Manifest) error {
	gen := assetgen.New(rule.GeneratorOptions())
	ctx := &assetgen.GenerateContext{
		Type:                types.SourceTypeJavaScript,
		ChunkGraph:          chunkGraph,
		RuntimeRequirements: types.NewRequirementSet(),
	}

	code, err := gen.Generate(module, ctx)
	if err != nil {
		if errors.Is(err, assetgen.ErrConfig) {
			p.metrics.IncConfigErrors()
			if p.logger != nil {
				p.logger.Error("configuration error", map[string]any{
					"module": module.ResourcePath,
					"error":  err.Error(),
				})
			}
		}
		return fmt.Errorf("generating %s: %w", module.ResourcePath, err)
	}
	p.metrics.IncModulesProcessed()

	rel := strings.TrimPrefix(module.ResourcePath, "./")
	if err := p.writeFile(filepath.Join(p.cfg.OutputDir, FragmentDir, rel+".js"), code.Bytes()); err != nil {
		return err
	}

	entry := manifest.Asset{
		Source:   rel,
		Size:     module.Source.Size(),
		Mimetype: p.mimetypeFor(module),
	}

	if module.BuildInfo.HasResource() {
		// Emit the verbatim asset under its content-hashed name.
		emitCtx := &assetgen.GenerateContext{
			Type:                types.SourceTypeAsset,
			ChunkGraph:          chunkGraph,
			RuntimeRequirements: types.NewRequirementSet(),
		}
		raw, err := gen.Generate(module, emitCtx)
		if err != nil {
			return fmt.Errorf("emitting %s: %w", module.ResourcePath, err)
		}
		filename := module.BuildInfo.Filename()
		if err := p.writeFile(filepath.Join(p.cfg.OutputDir, filepath.FromSlash(filename)), raw.Bytes()); err != nil {
			return err
		}
		p.metrics.AddAssetEmitted(raw.Size())

		entry.Mode = manifest.ModeResource
		entry.Output = filename
		entry.FullHash = module.BuildInfo.FullContentHash()
	} else {
		p.metrics.IncModulesInlined()
		entry.Mode = manifest.ModeInline
	}

	man.Add(entry)
	return nil
}

// mimetypeFor resolves the reporting mimetype: extension lookup first,
// content sniffing as fallback. Reporting only; the generator performs
// its own strict resolution for inline encoding.
func (p *Pipeline) mimetypeFor(module *graph.AssetModule) string {
	if mt, ok := mediatype.ForPath(module.ResourcePath); ok {
		return mt
	}
	return mediatype.Detect(module.Source.Bytes())
}

func (p *Pipeline) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating dir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// writeManifest writes both manifest forms.
func (p *Pipeline) writeManifest(outDir string, man *manifest.Manifest) error {
	yamlFile, err := os.Create(filepath.Join(outDir, ManifestYAML))
	if err != nil {
		return fmt.Errorf("creating manifest: %w", err)
	}
	defer iox.DiscardClose(yamlFile)
	if err := man.EncodeYAML(yamlFile); err != nil {
		return err
	}

	binFile, err := os.Create(filepath.Join(outDir, ManifestBin))
	if err != nil {
		return fmt.Errorf("creating manifest cache record: %w", err)
	}
	defer iox.DiscardClose(binFile)
	return man.Encode(binFile)
}
