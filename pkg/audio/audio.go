// Package audio defines the data model and external-source interface the
// rest of spek-core depends on. It performs no decoding and no DSP itself;
// concrete decoders live in pkg/audio/source.
package audio

import (
	"context"
	"errors"
	"math"
)

// Metadata describes a PCM buffer: sample rate, channel count, total
// samples per channel, and (when known) the original bit depth.
type Metadata struct {
	SampleRate   int
	Channels     int
	TotalSamples int64
	BitDepth     *int // nil when unknown
}

// Buffer is an interleaved f32 PCM buffer: (ch0, ch1, ..., ch0, ch1, ...).
// Samples must lie in [-1, 1]; producers that cannot guarantee this must
// clamp and replace non-finite values with 0 before returning a Buffer.
type Buffer struct {
	Samples []float32
	Meta    Metadata
}

// ClampSamples normalizes raw samples in place: non-finite values become 0,
// everything else is clamped to [-1, 1]. Concrete Source implementations
// call this before returning a Buffer so the invariant in spec.md §3 holds
// regardless of the decoder backend.
func ClampSamples(samples []float32) {
	for i, s := range samples {
		if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
			samples[i] = 0
			continue
		}
		if s > 1 {
			samples[i] = 1
		} else if s < -1 {
			samples[i] = -1
		}
	}
}

// Source is the one external boundary the analysis/render core depends on.
// Concrete implementations (pkg/audio/source) decode a container format;
// the core never interprets container bytes itself.
type Source interface {
	Load(ctx context.Context) (*Buffer, error)
}

// Error kinds returned by Source implementations.
var (
	ErrUnsupportedFormat = errors.New("audio: unsupported format")
	ErrDecodeFailed      = errors.New("audio: decode failed")
	ErrIO                = errors.New("audio: io error")
	ErrCancelled         = errors.New("audio: cancelled")
)

// RMS computes the root-mean-square level of a sample slice.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		sumSquares += float64(s) * float64(s)
	}
	return math.Sqrt(sumSquares / float64(len(samples)))
}

// Energy computes the total signal energy of a sample slice.
func Energy(samples []float32) float64 {
	var energy float64
	for _, s := range samples {
		energy += float64(s) * float64(s)
	}
	return energy
}

// ZeroCrossingRate computes the fraction of adjacent sample pairs that
// cross zero.
func ZeroCrossingRate(samples []float32) float64 {
	if len(samples) <= 1 {
		return 0
	}
	crossings := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] >= 0) != (samples[i] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(samples)-1)
}
