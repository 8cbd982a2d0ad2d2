// Package config handles kiln.yaml loading for the pack command.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kiln-build/kiln/assetgen"
	"github.com/kiln-build/kiln/hashing"
)

// Config represents a kiln.yaml configuration file.
type Config struct {
	// OutputDir is where emitted assets, fragments, and the manifest
	// land. Defaults to "dist".
	OutputDir string `yaml:"output_dir"`
	// PublicPath is the public base path recorded in the manifest for
	// deploy tooling. The generated code resolves it at runtime.
	PublicPath string `yaml:"public_path"`
	// Rules map assets to generator options. First match by suffix wins.
	Rules []Rule `yaml:"rules"`
}

// Rule binds a set of file suffixes to generator options.
type Rule struct {
	// Suffixes are matched case-insensitively against the asset path
	// (e.g. ".png", ".woff2"). An empty list matches everything.
	Suffixes []string `yaml:"suffixes"`
	// Filename is the output filename template.
	Filename string `yaml:"filename"`
	// Hash configures content hashing for resource emission.
	Hash HashConfig `yaml:"hash"`
	// DataURL configures inline encoding.
	DataURL DataURLConfig `yaml:"data_url"`
	// Inline forces the inline decision when set. When unset, assets up
	// to MaxSize bytes are inlined.
	Inline *bool `yaml:"inline"`
	// MaxSize is the auto-inline threshold in bytes. Zero disables
	// auto-inlining.
	MaxSize int64 `yaml:"max_size"`
}

// HashConfig holds content hash settings for a rule.
type HashConfig struct {
	Function string `yaml:"function"`
	Salt     string `yaml:"salt"`
	Digest   string `yaml:"digest"`
	Length   int    `yaml:"length"`
}

// DataURLConfig holds inline encoding settings for a rule.
type DataURLConfig struct {
	// Encoding accepts the string "base64" or the YAML boolean false
	// (percent-encoded text). Unset means the normalizer default.
	Encoding EncodingValue `yaml:"encoding"`
	// Mimetype overrides extension lookup when non-empty.
	Mimetype string `yaml:"mimetype"`
}

// EncodingValue carries a data URL encoding from YAML, where it may be
// written as a string or as the boolean false.
type EncodingValue string

// UnmarshalYAML accepts a string encoding name or the boolean false.
// The boolean true is rejected; unknown strings pass through so the
// generator can report them as configuration errors.
func (e *EncodingValue) UnmarshalYAML(node *yaml.Node) error {
	var b bool
	if err := node.Decode(&b); err == nil {
		if b {
			return fmt.Errorf("data_url encoding cannot be true; use \"base64\" or false")
		}
		*e = assetgen.EncodingNone
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("invalid data_url encoding: %w", err)
	}
	*e = EncodingValue(s)
	return nil
}

// Rule and build defaults applied by Normalize.
const (
	DefaultOutputDir        = "dist"
	DefaultFilename         = "[contenthash][ext]"
	DefaultHashFunction     = hashing.FunctionSHA256
	DefaultHashDigest       = hashing.EncodingHex
	DefaultHashDigestLength = 16
)

// Normalize fills in defaults. In particular it supplies the "base64"
// data URL encoding for rules that leave encoding unset, so the generator
// only ever sees the closed {"base64", false} set.
func (c *Config) Normalize() {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if len(c.Rules) == 0 {
		c.Rules = []Rule{{}}
	}
	for i := range c.Rules {
		r := &c.Rules[i]
		if r.Filename == "" {
			r.Filename = DefaultFilename
		}
		if r.Hash.Function == "" {
			r.Hash.Function = DefaultHashFunction
		}
		if r.Hash.Digest == "" {
			r.Hash.Digest = DefaultHashDigest
		}
		if r.Hash.Length == 0 {
			r.Hash.Length = DefaultHashDigestLength
		}
		if r.DataURL.Encoding == "" {
			r.DataURL.Encoding = assetgen.EncodingBase64
		}
	}
}

// Match returns the first rule whose suffix list matches the path, or nil.
func (c *Config) Match(path string) *Rule {
	lower := strings.ToLower(path)
	for i := range c.Rules {
		r := &c.Rules[i]
		if len(r.Suffixes) == 0 {
			return r
		}
		for _, suffix := range r.Suffixes {
			if strings.HasSuffix(lower, strings.ToLower(suffix)) {
				return r
			}
		}
	}
	return nil
}

// ShouldInline decides the inline flag for an asset of the given size.
// An explicit inline setting wins; otherwise assets within MaxSize inline.
func (r *Rule) ShouldInline(size int64) bool {
	if r.Inline != nil {
		return *r.Inline
	}
	return r.MaxSize > 0 && size <= r.MaxSize
}

// GeneratorOptions converts the rule into assetgen options.
func (r *Rule) GeneratorOptions() assetgen.Options {
	return assetgen.Options{
		FilenameTemplate: r.Filename,
		HashFunction:     r.Hash.Function,
		HashSalt:         r.Hash.Salt,
		HashDigest:       r.Hash.Digest,
		HashDigestLength: r.Hash.Length,
		DataURL: assetgen.DataURL{
			Encoding: string(r.DataURL.Encoding),
			Mimetype: r.DataURL.Mimetype,
		},
	}
}
