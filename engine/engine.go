package engine

import (
	"github.com/cocosip/go-bm3d/bm3d"
	"github.com/cocosip/go-bm3d/plane"
)

// Engine is the uniform interface over the two driver shapes: a spatial
// (BM3D) pass over one frame of planes, and a temporal (V-BM3D) pass
// over one frame of coregistered stacks. A small set of named methods
// resolved through a Registry, generalized from an encode/decode style
// interface to the single denoise entry point this domain has.
type Engine interface {
	// Process runs one denoising pass. Exactly one of Request.Frame or
	// Request.Stacks must be populated, matching whichever driver this
	// Engine wraps; the other is ignored.
	Process(req Request) (*bm3d.Result, error)

	// Name returns the engine's registry key ("bm3d" or "vbm3d").
	Name() string
}

// Request bundles one call's inputs. Spatial engines read Frame and
// write Dst, both required; temporal engines read Stacks and write
// Accum, both required.
type Request struct {
	Params *bm3d.Params

	// Frame holds one noisy plane per channel, for the spatial engine.
	Frame []*plane.Plane
	// Ref holds one basic-estimate plane per channel; required iff
	// Params.Final, for the spatial engine.
	Ref []*plane.Plane
	// Dst holds one destination plane per channel, for the spatial
	// engine's aggregated output.
	Dst []*plane.Plane

	// Stacks holds one coregistered temporal stack per channel, for the
	// temporal engine.
	Stacks []*plane.Stack
	// RefStacks holds one basic-estimate stack per channel; required iff
	// Params.Final, for the temporal engine.
	RefStacks []*plane.Stack
	// Accum receives the temporal engine's un-normalized scatter-add
	// contributions; the caller owns aggregation across the overlapping
	// frame window.
	Accum *bm3d.TemporalAccumBuffer
}
