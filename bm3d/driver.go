package bm3d

import "github.com/cocosip/go-bm3d/plane"

// Result carries diagnostics from one driver pass: how many anchors were
// processed and, per channel, how many times it was skipped entirely
// (chroma enabled with sigma at or below epsilon). It does not affect
// the core's numerical output.
type Result struct {
	Anchors         int
	ChannelsSkipped map[int]int
}

// AnchorCoords yields the clamped anchor coordinates along one axis for
// the given plane extent and step: stepping from 0 while the raw
// coordinate is less than extent-8+step, clamping each raw coordinate to
// extent-8 so the final anchor always lands exactly on the border.
func AnchorCoords(extent, step int) []int {
	limit := extent - 8
	var out []int
	for raw := 0; raw < limit+step; raw += step {
		v := raw
		if v > limit {
			v = limit
		}
		out = append(out, v)
	}
	return out
}

// referenceSource picks the plane a reference block is loaded from for
// matching: the basic-estimate plane when final is set, the noisy plane
// otherwise.
func referenceSource(final bool, src, ref *plane.Plane) *plane.Plane {
	if final && ref != nil {
		return ref
	}
	return src
}

// ProcessFrameSpatial runs the spatial (BM3D) driver over one set of
// per-channel planes. src holds one noisy plane per channel; ref holds
// one basic-estimate plane per channel and must be non-nil iff
// params.Final; dst receives the aggregated output, one plane per
// channel. Geometry (width/height/stride) must match across src, ref,
// and dst; this is a caller contract and is not validated here.
func ProcessFrameSpatial(params *Params, src, ref, dst []*plane.Plane) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(src) != params.Channels() {
		return nil, ErrPlaneCount
	}
	if params.Final && (ref == nil || len(ref) != params.Channels()) {
		return nil, ErrMissingRef
	}

	width, height, stride := src[0].Width, src[0].Height, src[0].Stride
	ab := NewAccumBuffer(params.Channels(), height, stride)

	res := &Result{ChannelsSkipped: make(map[int]int)}
	ys := AnchorCoords(height, params.BlockStep)
	xs := AnchorCoords(width, params.BlockStep)

	matchSource := referenceSource(params.Final, src[0], pickRef(ref, 0))

	for _, y := range ys {
		for _, x := range xs {
			refBlock := loadBlock(matchSource, x, y)
			ms := newMatchSet()
			SpatialMatch(ms, refBlock, matchSource, x, y, params.BMRange, 0)
			ms.insertIfNotIn(x, y, 0)
			res.Anchors++

			for c := 0; c < params.Channels(); c++ {
				if params.Chroma && params.skipChannel(c) {
					res.ChannelsSkipped[c]++
					continue
				}
				group := GatherSpatial(ms, src[c])
				var weight float64
				if params.Final {
					refGroup := GatherSpatial(ms, ref[c])
					weight = DenoiseWiener(group, refGroup, params.Sigma[c])
				} else {
					weight = DenoiseHard(group, params.Sigma[c])
				}
				ScatterAdd(ms, group, weight, ab.Wdst[c], ab.Weight[c], stride)
			}
		}
	}

	for c := 0; c < params.Channels(); c++ {
		Aggregate(dst[c].Data, ab.Wdst[c], ab.Weight[c], height, stride)
	}
	return res, nil
}

// ProcessFrameTemporal runs the temporal (V-BM3D) driver over one
// reference frame of coregistered stacks, one per channel. Unlike the
// spatial driver it never aggregates: it leaves summation across
// overlapping frame windows and the final division to the external
// collaborator, so tb (typically shared across adjacent frames' calls)
// only accumulates.
func ProcessFrameTemporal(params *Params, stacks []*plane.Stack, refStacks []*plane.Stack, tb *TemporalAccumBuffer) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.Radius == 0 {
		return nil, ErrInvalidRadius
	}
	if len(stacks) != params.Channels() {
		return nil, ErrPlaneCount
	}
	if params.Final && (refStacks == nil || len(refStacks) != params.Channels()) {
		return nil, ErrMissingRef
	}

	center := stacks[0].Center
	width, height := stacks[0].Planes[center].Width, stacks[0].Planes[center].Height

	res := &Result{ChannelsSkipped: make(map[int]int)}
	ys := AnchorCoords(height, params.BlockStep)
	xs := AnchorCoords(width, params.BlockStep)

	var matchStack *plane.Stack
	if params.Final && refStacks != nil {
		matchStack = refStacks[0]
	} else {
		matchStack = stacks[0]
	}

	for _, y := range ys {
		for _, x := range xs {
			refBlock := loadBlock(matchStack.Planes[center], x, y)
			ms := TemporalMatch(matchStack, refBlock, x, y, params.BMRange, params.PSNum, params.PSRange)
			res.Anchors++

			for c := 0; c < params.Channels(); c++ {
				if params.Chroma && params.skipChannel(c) {
					res.ChannelsSkipped[c]++
					continue
				}
				group := GatherTemporal(ms, stacks[c])
				var weight float64
				if params.Final {
					refGroup := GatherTemporal(ms, refStacks[c])
					weight = DenoiseWiener(group, refGroup, params.Sigma[c])
				} else {
					weight = DenoiseHard(group, params.Sigma[c])
				}
				ScatterAddTemporal(ms, group, weight, c, tb)
			}
		}
	}
	return res, nil
}

// pickRef returns refs[c] if refs is non-nil, else nil.
func pickRef(refs []*plane.Plane, c int) *plane.Plane {
	if refs == nil {
		return nil
	}
	return refs[c]
}
