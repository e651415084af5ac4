// Package engine provides a lookup layer over named BM3D/V-BM3D engines,
// so a caller can select "bm3d" or "vbm3d" by name from a small registry.
package engine

import "errors"

var (
	// ErrEngineNotFound is returned when an engine is not found in the
	// registry.
	ErrEngineNotFound = errors.New("engine not found")

	// ErrNilPlanes indicates a Request carries a nil plane slice where
	// one or more planes are required.
	ErrNilPlanes = errors.New("engine: nil planes")

	// ErrFrameCount indicates a stack in a temporal Request's Stacks does
	// not hold the 2*radius+1 planes the configured Params.Radius requires.
	ErrFrameCount = errors.New("engine: wrong frame count for radius")
)
