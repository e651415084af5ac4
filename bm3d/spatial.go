package bm3d

import "github.com/cocosip/go-bm3d/plane"

// loadBlock copies the 8x8 block at (x, y) out of p into a freshly
// allocated 64-element row-major float64 slice.
func loadBlock(p *plane.Plane, x, y int) []float64 {
	block := make([]float64, 64)
	for j := 0; j < 8; j++ {
		row := p.Data[(y+j)*p.Stride+x : (y+j)*p.Stride+x+8]
		for i, v := range row {
			block[j*8+i] = float64(v)
		}
	}
	return block
}

// ssd8x8 computes the sum of squared differences between ref (a 64-element
// row-major 8x8 block) and the 8x8 block of p at (x, y).
func ssd8x8(ref []float64, p *plane.Plane, x, y int) float64 {
	var sum float64
	for j := 0; j < 8; j++ {
		row := p.Data[(y+j)*p.Stride+x : (y+j)*p.Stride+x+8]
		base := j * 8
		for i, v := range row {
			d := ref[base+i] - float64(v)
			sum += d * d
		}
	}
	return sum
}

// clampRange returns the inclusive [lo, hi] candidate range for one axis:
// max(0, center-radius) .. min(limit, center+radius), where limit is
// width-8 or height-8.
func clampRange(center, radius, limit int) (lo, hi int) {
	lo = center - radius
	if lo < 0 {
		lo = 0
	}
	hi = center + radius
	if hi > limit {
		hi = limit
	}
	return lo, hi
}

// SpatialMatch runs an exhaustive spatial search: it visits, in
// row-major order, every candidate top-left coordinate within
// bm_range of (anchorX, anchorY) (clamped to the plane's valid block
// range), computes the SSD of each 8x8 candidate against ref, and folds
// the result into ms via the sorted insert in matchset.go. ms may already
// hold entries from a prior call (it is explicitly mutated, not
// replaced), matching "allowing the matcher to be called multiple times
// with cumulative results". z tags every inserted coordinate (0 for
// single-frame spatial-only use).
func SpatialMatch(ms *MatchSet, ref []float64, p *plane.Plane, anchorX, anchorY, bmRange, z int) {
	xLo, xHi := clampRange(anchorX, bmRange, p.Width-8)
	yLo, yHi := clampRange(anchorY, bmRange, p.Height-8)

	for row := yLo; row <= yHi; row++ {
		for col := xLo; col <= xHi; col++ {
			e := ssd8x8(ref, p, col, row)
			ms.insert(e, col, row, z)
		}
	}
}
