package spectrogram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshitijk4poor/spek-core/pkg/audio"
	"github.com/kshitijk4poor/spek-core/pkg/dsp/window"
)

func baseSettings(scale ScaleKind) Settings {
	return Settings{
		FFTSize: 2048,
		HopSize: 512,
		Window:  window.Hann,
		Scale:   Scale{Kind: scale},
		MinDB:   -120,
	}
}

func TestAnalyzeRejectsInvalidParameters(t *testing.T) {
	buf := &audio.Buffer{Samples: []float32{0, 0}, Meta: audio.Metadata{SampleRate: 44100, Channels: 1}}

	_, err := Analyze(buf, Settings{FFTSize: 0, HopSize: 512})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = Analyze(buf, Settings{FFTSize: 2048, HopSize: 0})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	empty := &audio.Buffer{Samples: nil, Meta: audio.Metadata{SampleRate: 44100, Channels: 1}}
	_, err = Analyze(empty, Settings{FFTSize: 2048, HopSize: 512})
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestAnalyzeRejectsShortAudio(t *testing.T) {
	samples := make([]float32, 512)
	buf := &audio.Buffer{Samples: samples, Meta: audio.Metadata{SampleRate: 44100, Channels: 1}}

	_, err := Analyze(buf, baseSettings(ScaleLinear))
	assert.ErrorIs(t, err, ErrProcessingFailed)
}

func TestAnalyzeSilenceIsZeroAcrossScales(t *testing.T) {
	samples := make([]float32, 44100) // 1s of silence, mono
	buf := &audio.Buffer{Samples: samples, Meta: audio.Metadata{SampleRate: 44100, Channels: 1}}

	for _, kind := range []ScaleKind{ScaleLinear, ScaleSqrt, ScaleCbrt, ScaleLog} {
		set, err := Analyze(buf, baseSettings(kind))
		require.NoError(t, err)
		spec := set.Channels[0]
		for f := 0; f < spec.FreqBins; f++ {
			for ti := 0; ti < spec.TimeBins; ti++ {
				assert.Equal(t, float32(0), spec.Data[f][ti], "scale %v bin (%d,%d)", kind, f, ti)
			}
		}
	}
}

func TestAnalyzeIntensityRangeIsFinite(t *testing.T) {
	n := 44100
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(math.Sin(2 * math.Pi * float64(i) * 440 / 44100))
	}
	buf := &audio.Buffer{Samples: samples, Meta: audio.Metadata{SampleRate: 44100, Channels: 1}}

	set, err := Analyze(buf, baseSettings(ScaleLog))
	require.NoError(t, err)

	for _, spec := range set.Channels {
		for f := 0; f < spec.FreqBins; f++ {
			for ti := 0; ti < spec.TimeBins; ti++ {
				v := spec.Data[f][ti]
				assert.False(t, math.IsNaN(float64(v)))
				assert.False(t, math.IsInf(float64(v), 0))
				assert.GreaterOrEqual(t, v, float32(0))
				assert.LessOrEqual(t, v, float32(1))
			}
		}
	}
}

func TestAnalyzeFullScaleSinePeaksAtExpectedBin(t *testing.T) {
	sampleRate := 44100
	fftSize := 2048
	k := 10 // bin index
	freq := float64(k) * float64(sampleRate) / float64(fftSize)

	n := sampleRate // 1 second
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate)))
	}
	buf := &audio.Buffer{Samples: samples, Meta: audio.Metadata{SampleRate: sampleRate, Channels: 1}}

	settings := Settings{FFTSize: fftSize, HopSize: 512, Window: window.Hann, Scale: Scale{Kind: ScaleLinear}, MinDB: -120}
	set, err := Analyze(buf, settings)
	require.NoError(t, err)

	spec := set.Channels[0]
	midFrame := spec.TimeBins / 2

	peakVal := float32(-1)
	for f := 0; f < spec.FreqBins; f++ {
		if spec.Data[f][midFrame] > peakVal {
			peakVal = spec.Data[f][midFrame]
		}
	}

	// A full-scale sine drives bins k-1..k+1 above 0 dBFS, so all three
	// clamp to 1.0; check that bin k holds the peak rather than that it is
	// the first bin to reach it.
	assert.Equal(t, peakVal, spec.Data[k][midFrame], "bin %d should hold the peak", k)
	assert.Greater(t, peakVal, float32(0.5))

	for f := 0; f < spec.FreqBins; f++ {
		if abs(f-k) > 3 {
			assert.Less(t, spec.Data[f][midFrame], float32(0.5), "bin %d leaked energy", f)
		}
	}
}

func TestAnalyzeDCBinPeggedStereo(t *testing.T) {
	sampleRate := 44100
	channels := 2
	n := sampleRate * 2 * channels
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = 1
	}
	buf := &audio.Buffer{Samples: samples, Meta: audio.Metadata{SampleRate: sampleRate, Channels: channels}}

	set, err := Analyze(buf, baseSettings(ScaleLog))
	require.NoError(t, err)
	require.Len(t, set.Channels, 2)

	for _, spec := range set.Channels {
		for ti := 0; ti < spec.TimeBins; ti++ {
			assert.Greater(t, spec.Data[0][ti], float32(0.9))
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
