package assets

import "testing"

func TestUniformName(t *testing.T) {
	tests := []struct {
		shader, param, want string
	}{
		{"slowtime.kage", "Color Change Bool", "ColorChange"},
		{"assets/slowtime.kage", "Color Change Bool", "ColorChange"},
		{"slowtime.kage", "Vignette Amount", "VignetteAmount"},
		{"other.kage", "Color Change Bool", "ColorChangeBool"},
	}

	for _, tt := range tests {
		if got := UniformName(tt.shader, tt.param); got != tt.want {
			t.Fatalf("UniformName(%q, %q): expected %q, got %q", tt.shader, tt.param, tt.want, got)
		}
	}
}

func TestEmbeddedShaderSource(t *testing.T) {
	src, err := LoadFile("slowtime.kage")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(src) == 0 {
		t.Fatalf("expected shader source")
	}
	if _, err := LoadFile("missing.kage"); err == nil {
		t.Fatalf("expected error for a missing shader")
	}
}
