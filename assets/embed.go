package assets

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.kage
var assetsFS embed.FS

// ShaderUniforms maps post-process parameter names to the uniform each
// shader reads them from.
var ShaderUniforms = map[string]map[string]string{
	"slowtime.kage": {"Color Change Bool": "ColorChange"},
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// LoadShader compiles an embedded Kage shader.
func LoadShader(path string) (*ebiten.Shader, error) {
	src, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load shader %s: %w", path, err)
	}
	sh, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("assets: compile shader %s: %w", path, err)
	}
	return sh, nil
}

// UniformName returns the uniform a post-process parameter drives in shader,
// falling back to the parameter name with spaces removed.
func UniformName(shader, param string) string {
	if m, ok := ShaderUniforms[cleanAssetPath(shader)]; ok {
		if u, ok := m[param]; ok {
			return u
		}
	}
	return strings.ReplaceAll(param, " ", "")
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	return strings.TrimPrefix(s, "assets/")
}
