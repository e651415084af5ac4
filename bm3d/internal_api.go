package bm3d

import "github.com/cocosip/go-bm3d/plane"

// NewMatchSet exports newMatchSet for internal/parallel's row-tiled
// driver, which needs to build a fresh MatchSet per anchor exactly like
// ProcessFrameSpatial does.
func NewMatchSet() *MatchSet {
	return newMatchSet()
}

// LoadBlock exports loadBlock for internal/parallel.
func LoadBlock(p *plane.Plane, x, y int) []float64 {
	return loadBlock(p, x, y)
}

// InsertIfNotIn exports insertIfNotIn for internal/parallel.
func (ms *MatchSet) InsertIfNotIn(x, y, z int) {
	ms.insertIfNotIn(x, y, z)
}

// SkipChannel exports skipChannel for internal/parallel.
func (p *Params) SkipChannel(c int) bool {
	return p.skipChannel(c)
}
