// Package fft implements a radix-2 Cooley-Tukey forward complex DFT,
// in-place, on real input laid out as separate re/im slices.
//
// This is intentionally hand-written rather than delegated to a
// third-party FFT library: spec.md §4.2 and §5 require an exact,
// auditable bit-reversal permutation and a specific twiddle-factor
// convention (e^{-i*2*pi*k/L} at butterfly step k of length L) so that
// the analyzer's determinism guarantee is something this codebase can
// reason about directly, not something borrowed from an opaque backend.
// See DESIGN.md for the full justification and the cross-check tests
// that validate this implementation against gonum's FFT.
package fft

import "math"

// Transform computes the forward FFT of re+i*im in place. len(re) must
// equal len(im) and must be a power of two; a zero-length or non-power-
// of-two input is a caller bug and panics, per spec.md §4.2.
func Transform(re, im []float32) {
	n := len(re)
	if len(im) != n {
		panic("fft: re and im must have equal length")
	}
	if n == 0 || n&(n-1) != 0 {
		panic("fft: length must be a non-zero power of two")
	}

	bitReverse(re, im)

	for length := 2; length <= n; length <<= 1 {
		half := length / 2
		step := -2 * math.Pi / float64(length)
		for start := 0; start < n; start += length {
			for k := 0; k < half; k++ {
				angle := step * float64(k)
				wr := float32(math.Cos(angle))
				wi := float32(math.Sin(angle))

				i := start + k
				j := i + half

				tr := wr*re[j] - wi*im[j]
				ti := wr*im[j] + wi*re[j]

				re[j] = re[i] - tr
				im[j] = im[i] - ti
				re[i] += tr
				im[i] += ti
			}
		}
	}
}

// bitReverse permutes re/im into bit-reversed index order.
func bitReverse(re, im []float32) {
	n := len(re)
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j |= bit
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}
