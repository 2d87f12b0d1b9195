package spek

import (
	"github.com/kshitijk4poor/spek-core/pkg/dsp/window"
	"github.com/kshitijk4poor/spek-core/pkg/render"
	"github.com/kshitijk4poor/spek-core/pkg/spectrogram"
)

// Window mirrors the stable public window-kind enumeration from spec.md §6.
type Window = window.Kind

// Re-exported window kinds for callers that don't want to import
// pkg/dsp/window directly.
const (
	WindowRectangular = window.Rectangular
	WindowHann        = window.Hann
	WindowHamming     = window.Hamming
	WindowBlackman    = window.Blackman
)

// ScaleKind mirrors spec.md §6's scale enumeration.
type ScaleKind = spectrogram.ScaleKind

const (
	ScaleLinear = spectrogram.ScaleLinear
	ScaleSqrt   = spectrogram.ScaleSqrt
	ScaleCbrt   = spectrogram.ScaleCbrt
	ScaleLog    = spectrogram.ScaleLog
	ScalePower  = spectrogram.ScalePower
)

// ChannelLayout mirrors spec.md §6's Combined|Split render-layer setting.
type ChannelLayout = render.Channels

const (
	ChannelsCombined = render.Combined
	ChannelsSplit    = render.Split
)

// Orientation mirrors render.Orientation for the public surface.
type Orientation = render.Orientation

const (
	OrientationVertical   = render.Vertical
	OrientationHorizontal = render.Horizontal
)

// SpectrogramSettings is the stable public analysis settings surface.
type SpectrogramSettings struct {
	FFTSize int
	HopSize int
	Window  Window
	MinDB   float64
	MaxDB   float64
	Scale   ScaleKind
	Power   float64 // used only when Scale == ScalePower
}

// RenderSettings is the stable public rendering settings surface.
type RenderSettings struct {
	Width, Height int
	Orientation   Orientation
	Channels      ChannelLayout
}

// Settings is the full input to GenerateSpectrogram.
type Settings struct {
	Spectrogram SpectrogramSettings
	Render      RenderSettings

	// FileName and Version feed the legend header; both optional.
	FileName string
	Version  string
}

// DefaultSettings returns a reasonable starting point: 2048-point FFT,
// 512-sample hop, Hann window, -120 dBFS floor, Log scale, 1024x512
// Vertical/Combined output.
func DefaultSettings() Settings {
	return Settings{
		Spectrogram: SpectrogramSettings{
			FFTSize: 2048,
			HopSize: 512,
			Window:  WindowHann,
			MinDB:   -120,
			MaxDB:   0,
			Scale:   ScaleLog,
		},
		Render: RenderSettings{
			Width:       1024,
			Height:      512,
			Orientation: OrientationVertical,
			Channels:    ChannelsCombined,
		},
	}
}
