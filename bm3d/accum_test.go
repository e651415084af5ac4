package bm3d

import "testing"

func TestNewAccumBufferSlicesDontOverlap(t *testing.T) {
	ab := NewAccumBuffer(2, 4, 4)
	ab.Wdst[0][0] = 1
	if ab.Weight[0][0] != 0 || ab.Wdst[1][0] != 0 || ab.Weight[1][0] != 0 {
		t.Fatal("writing Wdst[0][0] leaked into another channel's slice")
	}
	ab.Weight[1][15] = 9
	if ab.Wdst[0][0] != 1 {
		t.Fatal("writing Weight[1][15] corrupted Wdst[0][0]")
	}
}

func TestNewTemporalAccumBufferOneSlabPerFrame(t *testing.T) {
	tb := NewTemporalAccumBuffer(3, 5, 8, 8)
	if len(tb.Slabs) != 5 {
		t.Fatalf("expected 5 slabs, got %d", len(tb.Slabs))
	}
	tb.Slabs[0].Wdst[0][0] = 7
	if tb.Slabs[1].Wdst[0][0] != 0 {
		t.Fatal("slabs must not share backing storage")
	}
}
