// Package spectrogram implements the Analyzer: framing, windowing, FFT,
// dBFS mapping, normalization and intensity scaling. It has no rendering
// knowledge and no platform dependencies, grounded on the teacher's
// ComputeSpectrogram pipeline (pkg/audio/spectral.go in the teacher repo)
// and original_source's analysis/basic.rs.
package spectrogram

import (
	"errors"
	"fmt"
	"math"

	"github.com/kshitijk4poor/spek-core/pkg/audio"
	"github.com/kshitijk4poor/spek-core/pkg/dsp/fft"
	"github.com/kshitijk4poor/spek-core/pkg/dsp/window"
)

// Scale selects the intensity-scaling function applied after dBFS
// normalization.
type Scale struct {
	Kind  ScaleKind
	Power float64 // only used when Kind == ScalePower
}

// ScaleKind enumerates the supported scaling functions.
type ScaleKind int

const (
	ScaleLinear ScaleKind = iota
	ScaleSqrt
	ScaleCbrt
	ScaleLog
	ScalePower
)

// Settings controls the STFT analysis stage.
type Settings struct {
	FFTSize int
	HopSize int
	Window  window.Kind
	Scale   Scale
	MinDB   float32 // negative dBFS floor, e.g. -120.0
}

// Spectrogram holds one channel's intensity grid, frequency-major:
// Data[f][t] is the intensity at frequency bin f, time bin t, in [0,1].
type Spectrogram struct {
	FreqBins int
	TimeBins int
	Data     [][]float32
}

// Set is an ordered sequence of per-channel spectrograms.
type Set struct {
	Channels []Spectrogram
}

// Analysis errors.
var (
	ErrInvalidParameters = errors.New("spectrogram: invalid parameters")
	ErrProcessingFailed  = errors.New("spectrogram: audio shorter than one frame")
)

const epsilon = 1e-12

// Analyze runs the full STFT → dBFS → scale pipeline over audio, producing
// one Spectrogram per channel. Channels are analyzed independently; no
// mixing happens here (that is a rendering-layer concern, spec.md §9).
func Analyze(buf *audio.Buffer, settings Settings) (*Set, error) {
	if settings.FFTSize <= 0 || settings.HopSize <= 0 || len(buf.Samples) == 0 {
		return nil, fmt.Errorf("%w", ErrInvalidParameters)
	}

	channels := buf.Meta.Channels
	fftSize := settings.FFTSize
	hop := settings.HopSize
	samplesPerChannel := len(buf.Samples) / channels

	timeBins := saturatingSub(samplesPerChannel, fftSize) / hop
	if timeBins == 0 {
		return nil, fmt.Errorf("%w", ErrProcessingFailed)
	}

	freqBins := fftSize / 2
	coeffs := window.Build(settings.Window, fftSize)

	result := make([]Spectrogram, channels)

	re := make([]float32, fftSize)
	im := make([]float32, fftSize)

	for ch := 0; ch < channels; ch++ {
		data := make([][]float32, freqBins)
		for f := range data {
			data[f] = make([]float32, timeBins)
		}

		for t := 0; t < timeBins; t++ {
			base := (t*hop)*channels + ch

			for i := 0; i < fftSize; i++ {
				idx := base + i*channels
				var sample float32
				if idx < len(buf.Samples) {
					sample = buf.Samples[idx]
				}
				re[i] = sample * coeffs[i]
				im[i] = 0
			}

			fft.Transform(re, im)

			for f := 0; f < freqBins; f++ {
				power := re[f]*re[f] + im[f]*im[f]
				db := powerToDB(power, settings.MinDB)
				norm := normalize(db, settings.MinDB)
				data[f][t] = applyScale(norm, settings.Scale)
			}
		}

		result[ch] = Spectrogram{FreqBins: freqBins, TimeBins: timeBins, Data: data}
	}

	return &Set{Channels: result}, nil
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

// powerToDB converts power to dBFS, floored at minDB (never clamped
// against a positive ceiling: powers above 1.0 legitimately yield db > 0).
func powerToDB(power, minDB float32) float32 {
	db := float32(10 * math.Log10(float64(power)+epsilon))
	if db < minDB {
		return minDB
	}
	return db
}

// normalize maps dBFS into [0,1]: minDB -> 0, 0 dBFS -> 1.
func normalize(db, minDB float32) float32 {
	norm := (db - minDB) / (0 - minDB)
	if norm < 0 {
		return 0
	}
	if norm > 1 {
		return 1
	}
	return norm
}

func applyScale(norm float32, scale Scale) float32 {
	n := float64(norm)
	var v float64
	switch scale.Kind {
	case ScaleLinear:
		v = n
	case ScaleSqrt:
		v = math.Sqrt(n)
	case ScaleCbrt:
		v = math.Cbrt(n)
	case ScaleLog:
		v = math.Log10(1000*n+1) / 3
	case ScalePower:
		v = math.Pow(n, scale.Power)
	default:
		v = n
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return float32(v)
}
