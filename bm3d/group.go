package bm3d

import "github.com/cocosip/go-bm3d/plane"

// GatherSpatial assembles the 8x8x8 group cube for a spatial (single
// plane) match set: slot i of ms becomes z-slab i of the cube, gathered
// from p at (ms.X[i], ms.Y[i]), in slot order.
func GatherSpatial(ms *MatchSet, p *plane.Plane) cube {
	c := newCube()
	for i := 0; i < groupSize; i++ {
		block := loadBlock(p, ms.X[i], ms.Y[i])
		copy(c[i*64:i*64+64], block)
	}
	return c
}

// GatherTemporal assembles the group cube from a temporal match set:
// slot i is gathered from stack.Planes[ms.Z[i]] at (ms.X[i], ms.Y[i]).
func GatherTemporal(ms *MatchSet, stack *plane.Stack) cube {
	c := newCube()
	for i := 0; i < groupSize; i++ {
		block := loadBlock(stack.Planes[ms.Z[i]], ms.X[i], ms.Y[i])
		copy(c[i*64:i*64+64], block)
	}
	return c
}

// DenoiseHard runs the hard-threshold stage: forward 3D DCT,
// hard-threshold shrinkage, inverse 3D DCT, back into group in place. It
// returns the adaptive group weight.
func DenoiseHard(group cube, sigma float64) float64 {
	dct3D(group, true)
	w := HardThreshold(group, sigma)
	dct3D(group, false)
	return w
}

// DenoiseWiener runs the Wiener stage: forward 3D DCT on both the noisy
// group and the parallel basic-estimate reference group, Wiener
// shrinkage of the noisy spectrum using the reference spectrum, inverse
// 3D DCT of the (now shrunk) noisy group. ref is consumed (left in the
// transform domain); only group is inverse-transformed. It returns the
// adaptive group weight.
func DenoiseWiener(group, ref cube, sigma float64) float64 {
	dct3D(group, true)
	dct3D(ref, true)
	w := Wiener(group, ref, sigma)
	dct3D(group, false)
	return w
}

// ScatterAdd splats a denoised spatial group back into the accumulation
// buffers: for each of the 8 blocks, at its origin (ms.X[i], ms.Y[i]),
// weight*pixel is added into wdst and weight is added into weight, for
// every pixel in the 8x8 block.
func ScatterAdd(ms *MatchSet, group cube, weight float64, wdst, wgt []float32, stride int) {
	w32 := float32(weight)
	for i := 0; i < groupSize; i++ {
		x, y := ms.X[i], ms.Y[i]
		block := group[i*64 : i*64+64]
		for j := 0; j < 8; j++ {
			rowOff := (y+j)*stride + x
			src := block[j*8 : j*8+8]
			for k := 0; k < 8; k++ {
				idx := rowOff + k
				wdst[idx] += w32 * float32(src[k])
				wgt[idx] += w32
			}
		}
	}
}

// ScatterAddTemporal is the temporal counterpart of ScatterAdd: each
// block's contribution is added into the per-frame slab selected by
// ms.Z[i] of an externally-managed accumulation buffer.
func ScatterAddTemporal(ms *MatchSet, group cube, weight float64, channel int, tb *TemporalAccumBuffer) {
	w32 := float32(weight)
	for i := 0; i < groupSize; i++ {
		x, y, z := ms.X[i], ms.Y[i], ms.Z[i]
		slab := tb.Slabs[z]
		wdst, wgt := slab.Wdst[channel], slab.Weight[channel]
		block := group[i*64 : i*64+64]
		for j := 0; j < 8; j++ {
			rowOff := (y+j)*tb.Stride + x
			src := block[j*8 : j*8+8]
			for k := 0; k < 8; k++ {
				idx := rowOff + k
				wdst[idx] += w32 * float32(src[k])
				wgt[idx] += w32
			}
		}
	}
}
