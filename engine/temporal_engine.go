package engine

import "github.com/cocosip/go-bm3d/bm3d"

// TemporalEngine wraps bm3d.ProcessFrameTemporal as a named Engine.
type TemporalEngine struct{}

// NewTemporalEngine returns the "vbm3d" engine.
func NewTemporalEngine() *TemporalEngine {
	return &TemporalEngine{}
}

// Process runs bm3d.ProcessFrameTemporal over req.Stacks/req.RefStacks,
// scatter-adding into req.Accum.
func (e *TemporalEngine) Process(req Request) (*bm3d.Result, error) {
	if req.Stacks == nil || req.Accum == nil {
		return nil, ErrNilPlanes
	}
	if req.Params.Radius > 0 {
		want := 2*req.Params.Radius + 1
		for _, s := range req.Stacks {
			if len(s.Planes) != want {
				return nil, ErrFrameCount
			}
		}
	}
	return bm3d.ProcessFrameTemporal(req.Params, req.Stacks, req.RefStacks, req.Accum)
}

// Name returns "vbm3d".
func (e *TemporalEngine) Name() string { return "vbm3d" }
