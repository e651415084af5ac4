package bm3d

import "testing"

func TestAggregateDividesElementwise(t *testing.T) {
	height, stride := 2, 4
	dst := make([]float32, height*stride)
	wdst := make([]float32, height*stride)
	weight := make([]float32, height*stride)
	for i := range wdst {
		wdst[i] = float32(i * 2)
		weight[i] = 2
	}
	Aggregate(dst, wdst, weight, height, stride)
	for i := range dst {
		if dst[i] != float32(i) {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], float32(i))
		}
	}
}
