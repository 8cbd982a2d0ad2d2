package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kiln-build/kiln/assetgen"
	"github.com/kiln-build/kiln/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kiln.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
output_dir: build
public_path: /static/
rules:
  - suffixes: [".svg", ".txt"]
    filename: "inline-[contenthash][ext]"
    max_size: 4096
    data_url:
      encoding: false
  - suffixes: [".png"]
    filename: "img/[name].[contenthash][ext]"
    hash:
      function: blake3
      salt: v2
      digest: base64url
      length: 12
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OutputDir != "build" {
		t.Errorf("OutputDir = %q, want build", cfg.OutputDir)
	}
	if len(cfg.Rules) != 2 {
		t.Fatalf("len(Rules) = %d, want 2", len(cfg.Rules))
	}

	svg := cfg.Rules[0]
	if string(svg.DataURL.Encoding) != assetgen.EncodingNone {
		t.Errorf("rule 0 encoding = %q, want EncodingNone for yaml false", svg.DataURL.Encoding)
	}
	if svg.MaxSize != 4096 {
		t.Errorf("rule 0 max_size = %d, want 4096", svg.MaxSize)
	}

	png := cfg.Rules[1]
	if png.Hash.Function != "blake3" || png.Hash.Digest != "base64url" || png.Hash.Length != 12 {
		t.Errorf("rule 1 hash = %+v, want blake3/base64url/12", png.Hash)
	}
	if png.Hash.Salt != "v2" {
		t.Errorf("rule 1 salt = %q, want v2", png.Hash.Salt)
	}
}

func TestLoad_NormalizeDefaults(t *testing.T) {
	path := writeConfig(t, `
rules:
  - suffixes: [".png"]
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	r := cfg.Rules[0]
	if r.Filename != config.DefaultFilename {
		t.Errorf("Filename = %q, want default %q", r.Filename, config.DefaultFilename)
	}
	if r.Hash.Function != config.DefaultHashFunction {
		t.Errorf("Hash.Function = %q, want default %q", r.Hash.Function, config.DefaultHashFunction)
	}
	if r.Hash.Length != config.DefaultHashDigestLength {
		t.Errorf("Hash.Length = %d, want default %d", r.Hash.Length, config.DefaultHashDigestLength)
	}
	// The normalizer supplies the declarative encoding default; the
	// generator itself never defaults.
	if string(r.DataURL.Encoding) != assetgen.EncodingBase64 {
		t.Errorf("Encoding = %q, want normalizer default base64", r.DataURL.Encoding)
	}
	if cfg.OutputDir != config.DefaultOutputDir {
		t.Errorf("OutputDir = %q, want default %q", cfg.OutputDir, config.DefaultOutputDir)
	}
}

func TestLoad_EncodingTrueRejected(t *testing.T) {
	path := writeConfig(t, `
rules:
  - data_url:
      encoding: true
`)
	if _, err := config.Load(path); err == nil {
		t.Error("Load accepted encoding: true")
	}
}

func TestLoad_UnknownEncodingPassesThrough(t *testing.T) {
	// Unknown strings are not rejected at load time; the generator names
	// them in its configuration error.
	path := writeConfig(t, `
rules:
  - data_url:
      encoding: gzip
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(cfg.Rules[0].DataURL.Encoding) != "gzip" {
		t.Errorf("Encoding = %q, want gzip passed through", cfg.Rules[0].DataURL.Encoding)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("KILN_TEST_SALT", "s3cret")
	path := writeConfig(t, `
rules:
  - hash:
      salt: ${KILN_TEST_SALT}
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Rules[0].Hash.Salt != "s3cret" {
		t.Errorf("Salt = %q, want expanded env value", cfg.Rules[0].Hash.Salt)
	}
}

func TestMatch(t *testing.T) {
	cfg := &config.Config{Rules: []config.Rule{
		{Suffixes: []string{".png", ".gif"}},
		{Suffixes: []string{".txt"}},
	}}
	cfg.Normalize()

	if r := cfg.Match("images/logo.PNG"); r == nil || r != &cfg.Rules[0] {
		t.Error("case-insensitive suffix match failed")
	}
	if r := cfg.Match("notes/readme.txt"); r == nil || r != &cfg.Rules[1] {
		t.Error("second rule did not match")
	}
	if r := cfg.Match("bin/data.wasm"); r != nil {
		t.Errorf("unmatched path returned rule %+v", r)
	}
}

func TestMatch_CatchAll(t *testing.T) {
	cfg := config.Default()
	if r := cfg.Match("anything.xyz"); r == nil {
		t.Error("default config has no catch-all rule")
	}
}

func TestShouldInline(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name string
		rule config.Rule
		size int64
		want bool
	}{
		{"explicit true", config.Rule{Inline: &yes}, 1 << 20, true},
		{"explicit false beats threshold", config.Rule{Inline: &no, MaxSize: 100}, 10, false},
		{"under threshold", config.Rule{MaxSize: 100}, 100, true},
		{"over threshold", config.Rule{MaxSize: 100}, 101, false},
		{"no threshold", config.Rule{}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.ShouldInline(tt.size); got != tt.want {
				t.Errorf("ShouldInline(%d) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func TestGeneratorOptions(t *testing.T) {
	r := config.Rule{
		Filename: "[contenthash][ext]",
		Hash:     config.HashConfig{Function: "sha256", Salt: "s", Digest: "hex", Length: 8},
		DataURL:  config.DataURLConfig{Encoding: "base64", Mimetype: "image/png"},
	}
	opts := r.GeneratorOptions()
	if opts.FilenameTemplate != "[contenthash][ext]" || opts.HashSalt != "s" ||
		opts.HashDigestLength != 8 || opts.DataURL.Mimetype != "image/png" {
		t.Errorf("GeneratorOptions = %+v, want rule fields carried over", opts)
	}
}
