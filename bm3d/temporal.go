package bm3d

import "github.com/cocosip/go-bm3d/plane"

// seed is a single predictive-search seed coordinate and its SSD.
type seed struct {
	x, y, z int
	err     float64
}

// bestSeeds returns the n best (smallest-error) coordinates in ms, ordered
// from the n-th best down to the single best (i.e. index 0 corresponds to
// slot groupSize-n, the weakest of the n selected, and index n-1
// corresponds to slot groupSize-1, the strongest). Predictive search seeds
// each per-frame search from these n coordinates rather than the weakest n,
// since the strongest matches in a neighboring frame are the most reliable
// predictors of the next frame's position (see DESIGN.md).
func bestSeeds(ms *MatchSet, n int) []seed {
	seeds := make([]seed, n)
	for i := 0; i < n; i++ {
		slot := groupSize - n + i
		seeds[i] = seed{ms.X[slot], ms.Y[slot], ms.Z[slot], ms.Err[slot]}
	}
	return seeds
}

// TemporalMatch runs the predictive temporal block matcher: it seeds a
// global match set from a spatial search on the center plane, then walks
// backward and forward through the stack one frame at a time. At each
// frame it runs ps_num narrow (ps_range) spatial searches centered on the
// ps_num best coordinates carried from the previous frame (the center
// frame's result for the first step in each direction), merges that
// frame's ps_num best candidates into the global set (tagging them with
// the frame's z index), and carries its own ps_num best forward as the
// next frame's seeds. Finally it guarantees the reference anchor
// participates via insertIfNotIn.
func TemporalMatch(stack *plane.Stack, ref []float64, anchorX, anchorY, bmRange, psNum, psRange int) *MatchSet {
	center := stack.Center
	global := newMatchSet()
	SpatialMatch(global, ref, stack.Planes[center], anchorX, anchorY, bmRange, center)
	centerSeeds := bestSeeds(global, psNum)

	walk := func(ts []int, prev []seed) {
		for _, z := range ts {
			perFrame := newMatchSet()
			p := stack.Planes[z]
			for i := 0; i < psNum; i++ {
				SpatialMatch(perFrame, ref, p, prev[i].x, prev[i].y, psRange, z)
			}
			best := bestSeeds(perFrame, psNum)
			for _, s := range best {
				global.insert(s.err, s.x, s.y, z)
			}
			prev = best
		}
	}

	var backward, forward []int
	for t := 1; t <= center; t++ {
		backward = append(backward, center-t)
	}
	for t := 1; t < len(stack.Planes)-center; t++ {
		forward = append(forward, center+t)
	}
	walk(backward, centerSeeds)
	walk(forward, centerSeeds)

	global.insertIfNotIn(anchorX, anchorY, center)
	return global
}
