package engine

import "github.com/cocosip/go-bm3d/bm3d"

// SpatialEngine wraps bm3d.ProcessFrameSpatial as a named Engine.
type SpatialEngine struct{}

// NewSpatialEngine returns the "bm3d" engine.
func NewSpatialEngine() *SpatialEngine {
	return &SpatialEngine{}
}

// Process runs bm3d.ProcessFrameSpatial over req.Frame/req.Ref/req.Dst.
func (e *SpatialEngine) Process(req Request) (*bm3d.Result, error) {
	if req.Frame == nil || req.Dst == nil {
		return nil, ErrNilPlanes
	}
	return bm3d.ProcessFrameSpatial(req.Params, req.Frame, req.Ref, req.Dst)
}

// Name returns "bm3d".
func (e *SpatialEngine) Name() string { return "bm3d" }
