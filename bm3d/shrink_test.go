package bm3d

import (
	"math"
	"testing"
)

func TestHardThresholdKeepsDC(t *testing.T) {
	coef := newCube()
	coef[0] = 0.0000001
	w := HardThreshold(coef, 0.5)
	if coef[0] == 0 {
		t.Fatal("DC coefficient must always survive hard thresholding")
	}
	if w != 1.0 {
		t.Fatalf("expected weight 1 (nnz=1), got %v", w)
	}
}

func TestHardThresholdDropsBelowSigma(t *testing.T) {
	coef := newCube()
	coef[10] = 0.1
	coef[20] = -10.0
	w := HardThreshold(coef, 1.0)
	if coef[10] != 0 {
		t.Fatalf("coefficient below sigma should be zeroed, got %v", coef[10])
	}
	if coef[20] == 0 {
		t.Fatal("coefficient above sigma should survive")
	}
	// The DC coefficient (0 here) always counts, so nnz = 2: DC plus coef[20].
	if w != 0.5 {
		t.Fatalf("expected weight 0.5 (nnz=2), got %v", w)
	}
}

func TestWienerZeroSigmaIsIdentity(t *testing.T) {
	d := newCube()
	ref := newCube()
	for i := range d {
		d[i] = float64(i) * 4096.0
		ref[i] = float64(i) * 0.001
	}
	ref[5] = 0
	d[5] = 123 * 4096.0

	want := append(cube(nil), d...)
	Wiener(d, ref, 0)

	for i := range d {
		wantVal := want[i] / 4096.0
		if math.Abs(d[i]-wantVal) > 1e-9 {
			t.Fatalf("sigma=0 Wiener must be identity at %d: got %v want %v", i, d[i], wantVal)
		}
	}
}

func TestWienerAttenuatesSmallCoefficients(t *testing.T) {
	d := newCube()
	ref := newCube()
	d[1] = 4096.0
	ref[1] = 0.01
	Wiener(d, ref, 1.0)
	if math.Abs(d[1]) >= 4096.0*0.5 {
		t.Fatalf("expected strong attenuation for a small reference coefficient, got %v", d[1])
	}
}
