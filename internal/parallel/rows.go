// Package parallel provides an optional row-tiled parallel realization
// of the spatial driver, dispatching disjoint bands of anchor rows to
// privatized accumulation buffers merged at aggregation time. The core
// itself (package bm3d) stays single-threaded per frame; this package
// only fans a single spatial frame out across goroutines, each with its
// own bm3d.AccumBuffer, merging the sums before the final division.
//
// No third-party concurrency helper is used: the fan-out/merge shape
// here is a plain bounded WaitGroup over disjoint row bands, which the
// standard library's sync package expresses directly (see DESIGN.md).
package parallel

import (
	"runtime"
	"sync"

	"github.com/cocosip/go-bm3d/bm3d"
	"github.com/cocosip/go-bm3d/plane"
)

// rowBand is a contiguous slice of an anchors-Y list assigned to one
// worker.
type rowBand struct {
	ys []int
}

// splitRows partitions ys into at most workers contiguous, roughly
// equal-sized bands.
func splitRows(ys []int, workers int) []rowBand {
	if workers < 1 {
		workers = 1
	}
	if workers > len(ys) {
		workers = len(ys)
	}
	if workers == 0 {
		return nil
	}
	bands := make([]rowBand, workers)
	base := len(ys) / workers
	extra := len(ys) % workers
	idx := 0
	for i := 0; i < workers; i++ {
		n := base
		if i < extra {
			n++
		}
		bands[i] = rowBand{ys: ys[idx : idx+n]}
		idx += n
	}
	return bands
}

// ProcessFrameSpatial runs bm3d's spatial driver over one frame, tiling
// anchor rows across up to workers goroutines (defaulting to
// runtime.GOMAXPROCS(0) when workers <= 0). Each worker scatter-adds into
// a privatized bm3d.AccumBuffer; after every worker finishes, the
// privatized sums are merged into a single shared buffer and aggregated
// once, so the result equals bm3d.ProcessFrameSpatial run serially up to
// float32 rounding from the different summation order (bands are merged
// in the order their workers finish) — only the scatter-add phase is
// parallelized.
func ProcessFrameSpatial(params *bm3d.Params, src, ref, dst []*plane.Plane, workers int) (*bm3d.Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	width, height, stride := src[0].Width, src[0].Height, src[0].Stride
	channels := params.Channels()

	ys := bm3d.AnchorCoords(height, params.BlockStep)
	xs := bm3d.AnchorCoords(width, params.BlockStep)
	bands := splitRows(ys, workers)

	merged := bm3d.NewAccumBuffer(channels, height, stride)
	var mergedAnchors int
	skipped := make(map[int]int)
	var mu sync.Mutex

	var wg sync.WaitGroup
	wg.Add(len(bands))
	for _, band := range bands {
		band := band
		go func() {
			defer wg.Done()
			private := bm3d.NewAccumBuffer(channels, height, stride)
			anchors, bandSkipped := processBand(params, src, ref, band.ys, xs, private)

			mu.Lock()
			defer mu.Unlock()
			mergedAnchors += anchors
			for c, n := range bandSkipped {
				skipped[c] += n
			}
			for c := 0; c < channels; c++ {
				for i := range merged.Wdst[c] {
					merged.Wdst[c][i] += private.Wdst[c][i]
					merged.Weight[c][i] += private.Weight[c][i]
				}
			}
		}()
	}
	wg.Wait()

	for c := 0; c < channels; c++ {
		bm3d.Aggregate(dst[c].Data, merged.Wdst[c], merged.Weight[c], height, stride)
	}
	return &bm3d.Result{Anchors: mergedAnchors, ChannelsSkipped: skipped}, nil
}

// processBand runs the anchor loop for one row band into a privatized
// accumulation buffer, returning the anchor count and per-channel skip
// count for that band. It duplicates the per-anchor body of
// bm3d.ProcessFrameSpatial rather than reaching into its unexported
// helpers, since the match set and group-assembly steps are already
// exported for exactly this kind of external fan-out.
func processBand(params *bm3d.Params, src, ref []*plane.Plane, ys, xs []int, ab *bm3d.AccumBuffer) (int, map[int]int) {
	skipped := make(map[int]int)
	anchors := 0
	channels := params.Channels()
	stride := src[0].Stride

	matchSource := src[0]
	if params.Final && ref != nil {
		matchSource = ref[0]
	}

	for _, y := range ys {
		for _, x := range xs {
			refBlock := bm3d.LoadBlock(matchSource, x, y)
			ms := bm3d.NewMatchSet()
			bm3d.SpatialMatch(ms, refBlock, matchSource, x, y, params.BMRange, 0)
			ms.InsertIfNotIn(x, y, 0)
			anchors++

			for c := 0; c < channels; c++ {
				if params.Chroma && params.SkipChannel(c) {
					skipped[c]++
					continue
				}
				group := bm3d.GatherSpatial(ms, src[c])
				var weight float64
				if params.Final {
					refGroup := bm3d.GatherSpatial(ms, ref[c])
					weight = bm3d.DenoiseWiener(group, refGroup, params.Sigma[c])
				} else {
					weight = bm3d.DenoiseHard(group, params.Sigma[c])
				}
				bm3d.ScatterAdd(ms, group, weight, ab.Wdst[c], ab.Weight[c], stride)
			}
		}
	}
	return anchors, skipped
}
