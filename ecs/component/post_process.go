package component

// PostProcess is a full-screen post-process volume. Params are the dynamic
// scalar parameters read by the renderer as shader uniforms.
type PostProcess struct {
	Shader string
	Params map[string]float64
}

func (p *PostProcess) SetScalar(name string, v float64) {
	if p == nil {
		return
	}
	if p.Params == nil {
		p.Params = make(map[string]float64)
	}
	p.Params[name] = v
}

func (p *PostProcess) Scalar(name string) float64 {
	if p == nil {
		return 0
	}
	return p.Params[name]
}

var PostProcessComponent = NewComponent[PostProcess]()
