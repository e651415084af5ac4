package bm3d

import (
	"testing"

	"github.com/cocosip/go-bm3d/plane"
)

func makeStack(frames, w, h, center int) *plane.Stack {
	planes := make([]*plane.Plane, frames)
	for z := 0; z < frames; z++ {
		p := plane.New(w, h)
		fillRamp(p)
		planes[z] = p
	}
	return &plane.Stack{Planes: planes, Center: center}
}

func TestBestSeedsOrdering(t *testing.T) {
	ms := newMatchSet()
	for i := 0; i < groupSize; i++ {
		ms.insert(float64((i+1)*10), i, i, 0)
	}
	seeds := bestSeeds(ms, 3)
	if len(seeds) != 3 {
		t.Fatalf("expected 3 seeds, got %d", len(seeds))
	}
	if seeds[2].err > seeds[0].err {
		t.Fatalf("expected seeds in increasing-quality order (seeds[2] smallest error): %+v", seeds)
	}
	if seeds[2].err != ms.Err[groupSize-1] {
		t.Fatalf("strongest seed should mirror the match set's best slot")
	}
}

func TestTemporalMatchIncludesAnchorAndMultipleZ(t *testing.T) {
	stack := makeStack(5, 32, 32, 2)
	ref := loadBlock(stack.Planes[2], 10, 10)
	ms := TemporalMatch(stack, ref, 10, 10, 4, 2, 3)

	if !ms.contains(10, 10, 2) {
		t.Fatal("expected the anchor coordinate to be present in the final match set")
	}

	seenZ := make(map[int]bool)
	for _, z := range ms.Z {
		seenZ[z] = true
	}
	if len(seenZ) < 2 {
		t.Fatalf("expected matches drawn from more than one frame, saw z values %v", ms.Z)
	}
}

func TestTemporalMatchSingleFrameDegradesToSpatial(t *testing.T) {
	stack := makeStack(1, 32, 32, 0)
	ref := loadBlock(stack.Planes[0], 5, 5)
	ms := TemporalMatch(stack, ref, 5, 5, 4, 2, 3)
	for _, z := range ms.Z {
		if z != 0 {
			t.Fatalf("a single-frame stack must only ever produce z=0 matches, got %d", z)
		}
	}
}
