// Package bm3d implements the BM3D / V-BM3D collaborative filtering core:
// block matching, the separable 8x8x8 DCT, hard-threshold and empirical
// Wiener shrinkage, and overlap-add aggregation over float32 planes.
package bm3d

import "errors"

var (
	// ErrInvalidBlockStep indicates block_step is outside [1, 8].
	ErrInvalidBlockStep = errors.New("bm3d: block_step must be in [1, 8]")

	// ErrInvalidBMRange indicates bm_range is not positive.
	ErrInvalidBMRange = errors.New("bm3d: bm_range must be > 0")

	// ErrInvalidRadius indicates a negative temporal radius, or a zero
	// radius passed to the temporal driver.
	ErrInvalidRadius = errors.New("bm3d: radius must be >= 0 (and > 0 for the temporal driver)")

	// ErrInvalidPredictiveSearch indicates ps_num/ps_range are invalid for
	// a temporal (radius > 0) configuration.
	ErrInvalidPredictiveSearch = errors.New("bm3d: ps_num and ps_range must be > 0 when radius > 0")

	// ErrSigmaCount indicates len(sigma) does not match the channel count.
	ErrSigmaCount = errors.New("bm3d: len(sigma) must equal channel count")

	// ErrMissingRef indicates the final (Wiener) pass was requested
	// without basic-estimate reference planes.
	ErrMissingRef = errors.New("bm3d: final pass requires reference planes")

	// ErrPlaneCount indicates the number of source planes (spatial) or
	// stacks (temporal) does not match the configured channel count.
	ErrPlaneCount = errors.New("bm3d: wrong number of source planes for channel count")
)
