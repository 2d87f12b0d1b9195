// Package render rasterizes a spectrogram.Set into an RGBA image: nearest-
// neighbor resampling from (freq,time) bins to pixels, Combined/Split
// channel layout, Vertical/Horizontal orientation, and palette lookup.
// Grounded on the resampling/layout logic in
// original_source/render/basic.rs, adapted to the teacher's image.RGBA
// output convention (pkg/audio/spectral.go's SaveSpectrogramImage).
package render

import (
	"errors"
	"image"

	"github.com/kshitijk4poor/spek-core/pkg/palette"
	"github.com/kshitijk4poor/spek-core/pkg/spectrogram"
)

// Orientation selects which pixel axis carries time vs. frequency.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// Channels selects how multiple channels are combined into one image.
type Channels int

const (
	Combined Channels = iota
	Split
)

// Settings controls rasterization of a spectrogram.Set.
type Settings struct {
	Width, Height int
	Orientation   Orientation
	Channels      Channels
}

// Render errors.
var (
	ErrInvalidDimensions = errors.New("render: invalid dimensions")
	ErrEmptySet          = errors.New("render: empty spectrogram set")
)

// Render produces an RGBA image from set per settings.
func Render(set *spectrogram.Set, settings Settings) (*image.RGBA, error) {
	if settings.Width <= 0 || settings.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if set == nil || len(set.Channels) == 0 {
		return nil, ErrEmptySet
	}

	numChannels := len(set.Channels)
	if settings.Channels == Split && bandExtent(settings) < numChannels {
		return nil, ErrInvalidDimensions
	}

	img := image.NewRGBA(image.Rect(0, 0, settings.Width, settings.Height))

	switch settings.Channels {
	case Split:
		renderSplit(img, set, settings)
	default:
		renderCombined(img, set, settings)
	}

	return img, nil
}

// bandExtent returns the pixel extent along the axis that Split divides:
// rows for Vertical, columns for Horizontal.
func bandExtent(settings Settings) int {
	if settings.Orientation == Horizontal {
		return settings.Width
	}
	return settings.Height
}

func renderCombined(img *image.RGBA, set *spectrogram.Set, settings Settings) {
	for y := 0; y < settings.Height; y++ {
		for x := 0; x < settings.Width; x++ {
			t, f := sampleIndices(x, y, settings.Width, settings.Height, settings.Orientation, set.Channels[0])
			sum := float32(0)
			for _, ch := range set.Channels {
				sum += ch.Data[f][t]
			}
			v := sum / float32(len(set.Channels))
			img.SetRGBA(x, y, palette.Map(v))
		}
	}
}

// renderSplit partitions the band axis (rows for Vertical, columns for
// Horizontal) into len(set.Channels) equal bands, the last absorbing any
// remainder, each band painted solely from its own channel's spectrogram.
func renderSplit(img *image.RGBA, set *spectrogram.Set, settings Settings) {
	n := len(set.Channels)
	extent := bandExtent(settings)
	bandSize := extent / n

	for y := 0; y < settings.Height; y++ {
		for x := 0; x < settings.Width; x++ {
			bandCoord := y
			if settings.Orientation == Horizontal {
				bandCoord = x
			}

			ch := bandCoord / bandSize
			if ch >= n {
				ch = n - 1
			}
			bandStart := ch * bandSize
			bandHeight := bandSize
			if ch == n-1 {
				bandHeight = extent - bandStart
			}

			var bw, bh, lx, ly int
			if settings.Orientation == Horizontal {
				bw, bh = bandHeight, settings.Height
				lx, ly = x-bandStart, y
			} else {
				bw, bh = settings.Width, bandHeight
				lx, ly = x, y-bandStart
			}

			t, f := sampleIndices(lx, ly, bw, bh, settings.Orientation, set.Channels[ch])
			img.SetRGBA(x, y, palette.Map(set.Channels[ch].Data[f][t]))
		}
	}
}

// sampleIndices computes (time_idx, freq_idx) for local pixel (x,y) within
// a region of size (w,h). Vertical: x drives time, y drives frequency
// (inverted, low frequency at the bottom). Horizontal swaps the roles.
func sampleIndices(x, y, w, h int, orientation Orientation, spec spectrogram.Spectrogram) (timeIdx, freqIdx int) {
	timeBins := spec.TimeBins
	freqBins := spec.FreqBins

	if orientation == Horizontal {
		timeIdx = clampInt(y*timeBins/h, 0, timeBins-1)
		freqIdx = clampInt((w-1-x)*freqBins/w, 0, freqBins-1)
		return
	}

	timeIdx = clampInt(x*timeBins/w, 0, timeBins-1)
	freqIdx = clampInt((h-1-y)*freqBins/h, 0, freqBins-1)
	return
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
