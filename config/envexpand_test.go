package config_test

import (
	"testing"

	"github.com/kiln-build/kiln/config"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("KILN_SET", "value")
	t.Setenv("KILN_EMPTY", "")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"set variable", "salt: ${KILN_SET}", "salt: value"},
		{"unset variable", "salt: ${KILN_UNSET_XYZ}", "salt: "},
		{"default used when unset", "salt: ${KILN_UNSET_XYZ:-fallback}", "salt: fallback"},
		{"default used when empty", "salt: ${KILN_EMPTY:-fallback}", "salt: fallback"},
		{"default ignored when set", "salt: ${KILN_SET:-fallback}", "salt: value"},
		{"no pattern", "salt: plain", "salt: plain"},
		{"multiple", "${KILN_SET}/${KILN_SET}", "value/value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.ExpandEnv(tt.input); got != tt.want {
				t.Errorf("ExpandEnv(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
