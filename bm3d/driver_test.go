package bm3d

import (
	"math"
	"testing"

	"github.com/cocosip/go-bm3d/plane"
)

func TestAnchorCoordsCoversBorder(t *testing.T) {
	coords := AnchorCoords(20, 8)
	if coords[0] != 0 {
		t.Fatalf("first anchor should be 0, got %d", coords[0])
	}
	last := coords[len(coords)-1]
	if last != 12 {
		t.Fatalf("last anchor should clamp to extent-8=12, got %d", last)
	}
	for _, c := range coords {
		if c < 0 || c > 12 {
			t.Fatalf("anchor %d out of [0, 12]", c)
		}
	}
}

func TestAnchorCoordsExactMultiple(t *testing.T) {
	coords := AnchorCoords(16, 8)
	want := []int{0, 8}
	if len(coords) != len(want) {
		t.Fatalf("got %v, want %v", coords, want)
	}
	for i := range want {
		if coords[i] != want[i] {
			t.Fatalf("got %v, want %v", coords, want)
		}
	}
}

func TestProcessFrameSpatialHardThresholdFlatPlane(t *testing.T) {
	p := plane.New(16, 16)
	for i := range p.Data {
		p.Data[i] = 10
	}
	dst := plane.New(16, 16)
	params := NewParams().WithSigma(0)

	res, err := ProcessFrameSpatial(params, []*plane.Plane{p}, nil, []*plane.Plane{dst})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Anchors == 0 {
		t.Fatal("expected at least one anchor")
	}
	for i, v := range dst.Data {
		if math.Abs(float64(v)-10) > 1e-3 {
			t.Fatalf("pixel %d: got %v, want ~10 for a flat plane at sigma=0", i, v)
		}
	}
}

func TestProcessFrameSpatialRequiresRefWhenFinal(t *testing.T) {
	p := plane.New(16, 16)
	dst := plane.New(16, 16)
	params := NewParams().WithFinal(true)
	_, err := ProcessFrameSpatial(params, []*plane.Plane{p}, nil, []*plane.Plane{dst})
	if err != ErrMissingRef {
		t.Fatalf("got %v, want ErrMissingRef", err)
	}
}

func TestProcessFrameSpatialRejectsWrongPlaneCount(t *testing.T) {
	p := plane.New(16, 16)
	dst := plane.New(16, 16)
	params := NewParams().WithChroma(true).WithSigma(0.1, 0.1, 0.1)
	_, err := ProcessFrameSpatial(params, []*plane.Plane{p}, nil, []*plane.Plane{dst})
	if err != ErrPlaneCount {
		t.Fatalf("got %v, want ErrPlaneCount", err)
	}
}

func TestProcessFrameSpatialChromaSkip(t *testing.T) {
	mkPlane := func(v float32) *plane.Plane {
		p := plane.New(16, 16)
		for i := range p.Data {
			p.Data[i] = v
		}
		return p
	}
	src := []*plane.Plane{mkPlane(10), mkPlane(20), mkPlane(30)}
	dst := []*plane.Plane{plane.New(16, 16), plane.New(16, 16), plane.New(16, 16)}
	params := NewParams().WithChroma(true).WithSigma(0.1, 0, 0.1)

	res, err := ProcessFrameSpatial(params, src, nil, dst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ChannelsSkipped[1] == 0 {
		t.Fatal("expected channel 1 (sigma=0) to be skipped at least once")
	}
	if res.ChannelsSkipped[0] != 0 || res.ChannelsSkipped[2] != 0 {
		t.Fatal("channels with nonzero sigma should never be skipped")
	}
	// A channel skipped at every anchor never receives any scatter-add
	// contribution, so its accumulation buffers stay all-zero and the
	// final wdst/weight division yields NaN everywhere, per Aggregate's
	// documented zero-weight contract.
	for _, v := range dst[1].Data {
		if !math.IsNaN(float64(v)) {
			t.Fatalf("expected NaN for a fully skipped channel's destination, got %v", v)
		}
	}
}

func TestProcessFrameTemporalRequiresRadius(t *testing.T) {
	stack := makeStack(1, 16, 16, 0)
	params := NewParams()
	tb := NewTemporalAccumBuffer(1, 1, 16, 16)
	_, err := ProcessFrameTemporal(params, []*plane.Stack{stack}, nil, tb)
	if err != ErrInvalidRadius {
		t.Fatalf("got %v, want ErrInvalidRadius", err)
	}
}

func TestProcessFrameTemporalAccumulatesWithoutAggregating(t *testing.T) {
	stack := makeStack(3, 16, 16, 1)
	params := NewParams().WithRadius(1).WithPredictiveSearch(2, 3)
	tb := NewTemporalAccumBuffer(1, 3, 16, 16)

	res, err := ProcessFrameTemporal(params, []*plane.Stack{stack}, nil, tb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Anchors == 0 {
		t.Fatal("expected at least one anchor")
	}
	var totalWeight float32
	for _, slab := range tb.Slabs {
		for _, w := range slab.Weight[0] {
			totalWeight += w
		}
	}
	if totalWeight == 0 {
		t.Fatal("expected nonzero accumulated weight across slabs")
	}
}
