package pathtpl_test

import (
	"strings"
	"testing"

	"github.com/kiln-build/kiln/pathtpl"
)

func TestResolve(t *testing.T) {
	data := pathtpl.Data{
		ContentHash: "a1b2c3d4",
		Path:        "images/logo.png",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"contenthash and ext", "[contenthash][ext]", "a1b2c3d4.png"},
		{"hash alias", "[hash][ext]", "a1b2c3d4.png"},
		{"name", "[name].[contenthash][ext]", "logo.a1b2c3d4.png"},
		{"base", "assets/[base]", "assets/logo.png"},
		{"path", "[path][contenthash][ext]", "images/a1b2c3d4.png"},
		{"literal prefix", "static/media/[contenthash][ext]", "static/media/a1b2c3d4.png"},
		{"no tokens", "fixed-name.bin", "fixed-name.bin"},
		{"contenthash truncated", "[contenthash:4][ext]", "a1b2.png"},
		{"hash alias truncated", "[hash:6][ext]", "a1b2c3.png"},
		{"truncation beyond length", "[contenthash:99][ext]", "a1b2c3d4.png"},
		{"doc example", "[path][name].[contenthash:8][ext]", "images/logo.a1b2c3d4.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pathtpl.Resolve(tt.template, data)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestResolve_RootFile(t *testing.T) {
	got, err := pathtpl.Resolve("[path][name]-[hash][ext]", pathtpl.Data{
		ContentHash: "ffff",
		Path:        "favicon.ico",
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "favicon-ffff.ico" {
		t.Errorf("Resolve = %q, want %q", got, "favicon-ffff.ico")
	}
}

func TestResolve_ExtensionlessFile(t *testing.T) {
	got, err := pathtpl.Resolve("[name][ext]-[contenthash]", pathtpl.Data{
		ContentHash: "0123",
		Path:        "data/LICENSE",
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "LICENSE-0123" {
		t.Errorf("Resolve = %q, want %q", got, "LICENSE-0123")
	}
}

func TestResolve_UnknownToken(t *testing.T) {
	_, err := pathtpl.Resolve("[fullhash][ext]", pathtpl.Data{ContentHash: "x", Path: "a.png"})
	if err == nil {
		t.Fatal("Resolve with unknown token succeeded, want error")
	}
}

func TestResolve_MalformedTokensRejected(t *testing.T) {
	// No bracket sequence may pass through into the filename silently.
	data := pathtpl.Data{ContentHash: "deadbeef", Path: "images/logo.png"}
	templates := []string{
		"[chunk-id][ext]",
		"[Hash][ext]",
		"[contenthash:][ext]",
		"[contenthash:0][ext]",
		"[contenthash:abc][ext]",
		"[name:3][ext]",
		"[][ext]",
	}
	for _, template := range templates {
		t.Run(template, func(t *testing.T) {
			got, err := pathtpl.Resolve(template, data)
			if err == nil {
				t.Fatalf("Resolve(%q) = %q, want error", template, got)
			}
			if !strings.Contains(err.Error(), template[1:strings.IndexByte(template, ']')]) {
				t.Errorf("error does not name the token: %v", err)
			}
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	data := pathtpl.Data{ContentHash: "deadbeef", Path: "fonts/inter.woff2"}
	first, err := pathtpl.Resolve("[path][name].[contenthash][ext]", data)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	second, err := pathtpl.Resolve("[path][name].[contenthash][ext]", data)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if first != second {
		t.Errorf("repeated Resolve differ: %q vs %q", first, second)
	}
}
