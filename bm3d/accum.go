package bm3d

// AccumBuffer holds the per-channel wdst (weighted estimate sum) and
// weight (weight sum) planes used during spatial aggregation. Both are
// zero-initialized and share one contiguous scratch block laid out as
// channels x 2 x height x stride, sliced out by NewAccumBuffer so that
// Wdst[c] and Weight[c] are plain height*stride float32 slices a caller
// can index as [y*stride+x].
type AccumBuffer struct {
	Wdst   [][]float32
	Weight [][]float32
	Height int
	Stride int
}

// NewAccumBuffer allocates a single scratch block of
// channels*2*height*stride floats and slices it into per-channel
// wdst/weight planes.
func NewAccumBuffer(channels, height, stride int) *AccumBuffer {
	planeSize := height * stride
	scratch := make([]float32, channels*2*planeSize)
	ab := &AccumBuffer{
		Wdst:   make([][]float32, channels),
		Weight: make([][]float32, channels),
		Height: height,
		Stride: stride,
	}
	for c := 0; c < channels; c++ {
		base := c * 2 * planeSize
		ab.Wdst[c] = scratch[base : base+planeSize]
		ab.Weight[c] = scratch[base+planeSize : base+2*planeSize]
	}
	return ab
}

// TemporalAccumBuffer holds, per channel, one AccumBuffer-shaped slab per
// frame in the stack (indexed by the stack's z coordinate): a
// (2r+1) x 2 x height x stride layout shared across adjacent frames'
// calls into the driver.
type TemporalAccumBuffer struct {
	Slabs  []*AccumBuffer // one per z in [0, 2r+1)
	Height int
	Stride int
}

// NewTemporalAccumBuffer allocates one AccumBuffer per frame slab.
func NewTemporalAccumBuffer(channels, frames, height, stride int) *TemporalAccumBuffer {
	tb := &TemporalAccumBuffer{
		Slabs:  make([]*AccumBuffer, frames),
		Height: height,
		Stride: stride,
	}
	for z := range tb.Slabs {
		tb.Slabs[z] = NewAccumBuffer(channels, height, stride)
	}
	return tb
}
