package bm3d

// Params collects the configuration options the per-frame entry point
// needs: exported fields with sensible defaults from NewParams, a
// Validate method, and With* chaining helpers for the options most
// callers tune.
type Params struct {
	// BlockStep is the anchor stride; smaller means more overlap, higher
	// quality, higher cost. Must be in [1, 8].
	BlockStep int

	// BMRange is the spatial search half-side (exhaustive).
	BMRange int

	// Radius is the temporal half-window; 0 disables V-BM3D.
	Radius int

	// PSNum is the number of predictive-search seeds carried between
	// adjacent frames. Ignored when Radius == 0.
	PSNum int

	// PSRange is the per-seed search half-side for predictive search.
	// Ignored when Radius == 0.
	PSRange int

	// Sigma holds the noise standard deviation per channel, in the same
	// units as pixel intensity. When Chroma is set, a channel with
	// Sigma <= epsilon is skipped entirely.
	Sigma []float64

	// Chroma selects whether 3 channels are processed together (true) or
	// a single luma plane (false).
	Chroma bool

	// Final selects Wiener shrinkage (true) or hard-threshold (false).
	Final bool
}

// sigmaEpsilon is the sigma threshold at or below which a channel is
// skipped entirely rather than denoised.
const sigmaEpsilon = 1e-9

// NewParams returns Params with the defaults a typical BM3D hard-
// threshold, spatial-only, single-channel call would use.
func NewParams() *Params {
	return &Params{
		BlockStep: 8,
		BMRange:   16,
		Radius:    0,
		PSNum:     2,
		PSRange:   4,
		Sigma:     []float64{0.02},
		Chroma:    false,
		Final:     false,
	}
}

// WithBlockStep sets BlockStep and returns p for chaining.
func (p *Params) WithBlockStep(step int) *Params {
	p.BlockStep = step
	return p
}

// WithBMRange sets BMRange and returns p for chaining.
func (p *Params) WithBMRange(r int) *Params {
	p.BMRange = r
	return p
}

// WithRadius sets Radius and returns p for chaining.
func (p *Params) WithRadius(r int) *Params {
	p.Radius = r
	return p
}

// WithPredictiveSearch sets PSNum/PSRange and returns p for chaining.
func (p *Params) WithPredictiveSearch(num, rng int) *Params {
	p.PSNum = num
	p.PSRange = rng
	return p
}

// WithSigma sets Sigma and returns p for chaining.
func (p *Params) WithSigma(sigma ...float64) *Params {
	p.Sigma = sigma
	return p
}

// WithChroma sets Chroma and returns p for chaining.
func (p *Params) WithChroma(chroma bool) *Params {
	p.Chroma = chroma
	return p
}

// WithFinal sets Final and returns p for chaining.
func (p *Params) WithFinal(final bool) *Params {
	p.Final = final
	return p
}

// Channels returns 3 if Chroma is set, otherwise 1.
func (p *Params) Channels() int {
	if p.Chroma {
		return 3
	}
	return 1
}

// Validate checks the parameter constraints the per-frame entry point
// requires.
func (p *Params) Validate() error {
	if p.BlockStep < 1 || p.BlockStep > 8 {
		return ErrInvalidBlockStep
	}
	if p.BMRange <= 0 {
		return ErrInvalidBMRange
	}
	if p.Radius < 0 {
		return ErrInvalidRadius
	}
	if p.Radius > 0 && (p.PSNum <= 0 || p.PSRange <= 0) {
		return ErrInvalidPredictiveSearch
	}
	if len(p.Sigma) != p.Channels() {
		return ErrSigmaCount
	}
	return nil
}

// skipChannel reports whether channel c should be skipped: chroma is
// enabled and that channel's sigma is at or below epsilon.
func (p *Params) skipChannel(c int) bool {
	return p.Chroma && p.Sigma[c] <= sigmaEpsilon
}
