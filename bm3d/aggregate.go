package bm3d

// Aggregate computes dst[p] = wdst[p] / weight[p] for every pixel of a
// height x stride plane. weight is positive for every pixel covered by
// the anchor schedule in driver.go; a zero weight is a driver-coverage
// bug, not a condition this function guards against, and produces
// +Inf/NaN like any other division by zero.
func Aggregate(dst, wdst, weight []float32, height, stride int) {
	n := height * stride
	for i := 0; i < n; i++ {
		dst[i] = wdst[i] / weight[i]
	}
}
