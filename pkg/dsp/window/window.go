// Package window precomputes window-function coefficients for the STFT
// analyzer. It is deterministic and total: every Kind, including the
// reserved ones, returns a full coefficient slice with no error path.
package window

import "math"

// Kind selects a window function.
type Kind int

const (
	Rectangular Kind = iota
	Hann
	Hamming
	Blackman
	// Reserved kinds, exposed for API stability (spec.md §9). They fall
	// back to Rectangular until a dedicated implementation lands.
	Nuttall
	Kaiser
	FlatTop
)

// Build returns n window coefficients for kind. i ranges 0..n-1 and every
// formula uses i/n (not i/(n-1)): this keeps the window periodic, which is
// what the overlap-add STFT here relies on for consistent energy across
// hops, rather than the symmetric i/(n-1) convention used for FIR design.
func Build(kind Kind, n int) []float32 {
	w := make([]float32, n)
	switch kind {
	case Hann:
		for i := 0; i < n; i++ {
			w[i] = float32(0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n)))
		}
	case Hamming:
		for i := 0; i < n; i++ {
			w[i] = float32(0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n)))
		}
	case Blackman:
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			w[i] = float32(0.42 - 0.5*math.Cos(a) + 0.08*math.Cos(2*a))
		}
	case Rectangular, Nuttall, Kaiser, FlatTop:
		for i := range w {
			w[i] = 1
		}
	default:
		for i := range w {
			w[i] = 1
		}
	}
	return w
}
