package bm3d

// invRoundTrip is the compensating factor for the 3D DCT round-trip
// inflation described at dct8: three length-8 passes each contribute a
// factor of 2*8=16, composing to 16^3 = 4096.
const invRoundTrip = 1.0 / 4096.0

// HardThreshold attenuates a 3D-DCT coefficient cube in place: a
// coefficient survives (scaled by invRoundTrip) only if its magnitude is
// at least sigma, except the DC coefficient (index 0, the cube's
// (0,0,0) position) which always survives. It returns the adaptive
// group weight 1/nnz, where nnz is the number of surviving coefficients.
// The DC coefficient always counts toward nnz (even when it is 0), so an
// all-zero group yields weight 1, not +Inf.
func HardThreshold(coef cube, sigma float64) float64 {
	nnz := 0
	for i, c := range coef {
		threshold := sigma
		if i == 0 {
			threshold = 0
		}
		if c < 0 {
			if -c >= threshold {
				coef[i] = c * invRoundTrip
				nnz++
			} else {
				coef[i] = 0
			}
		} else {
			if c >= threshold {
				coef[i] = c * invRoundTrip
				nnz++
			} else {
				coef[i] = 0
			}
		}
	}
	return 1.0 / float64(nnz)
}

// Wiener applies empirical-Wiener shrinkage: given the noisy coefficient
// cube d and the basic-estimate spectrum ref (both length 512, 3D-DCT
// coefficients of an 8x8x8 group), it computes per coefficient
// a = ref^2/(ref^2+sigma^2) (a == 1 for the DC coefficient), sets
// d[i] = d[i]*invRoundTrip*a, and returns the adaptive group weight
// 1/sum(a^2).
func Wiener(d, ref cube, sigma float64) float64 {
	sigma2 := sigma * sigma
	var sumA2 float64
	for i, r := range ref {
		a := 1.0
		if i != 0 && sigma2 > 0 {
			r2 := r * r
			a = r2 / (r2 + sigma2)
		}
		d[i] = d[i] * invRoundTrip * a
		sumA2 += a * a
	}
	return 1.0 / sumA2
}
