package spek

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kshitijk4poor/spek-core/pkg/audio"
	"github.com/kshitijk4poor/spek-core/pkg/legend"
	"github.com/kshitijk4poor/spek-core/pkg/overlay"
	"github.com/kshitijk4poor/spek-core/pkg/render"
	"github.com/kshitijk4poor/spek-core/pkg/spectrogram"
)

// LegendOptions controls whether and how a legend overlay is drawn. A nil
// *LegendOptions passed to GenerateSpectrogram skips the legend entirely,
// leaving a bare spectrogram image.
type LegendOptions struct {
	Settings   legend.Settings
	Margins    legend.Margins
	Rasterizer overlay.TextRasterizer
}

// DefaultLegendOptions returns tick counts and margins that match the
// concrete scenarios in spec.md §8.
func DefaultLegendOptions() *LegendOptions {
	return &LegendOptions{
		Settings: legend.Settings{
			FreqTicks: 8,
			TimeTicks: 10,
			DbTicks:   6,
			FontSize:  12,
		},
		Margins: legend.Margins{Left: 80, Right: 100, Top: 60, Bottom: 60},
	}
}

// GenerateSpectrogram is the single public entry point: source → Analyzer
// → Renderer → Legend Generator → Overlay → Result. Errors from each stage
// are mapped to the public Kind taxonomy; nothing is retried internally.
func GenerateSpectrogram(ctx context.Context, source audio.Source, settings Settings, legendOpts *LegendOptions) (*Result, error) {
	if err := validateSettings(settings); err != nil {
		return nil, newError(KindInvalidInput, err)
	}

	buf, err := source.Load(ctx)
	if err != nil {
		if errors.Is(err, audio.ErrCancelled) {
			return nil, newError(KindCancelled, err)
		}
		return nil, newError(KindDecodeError, err)
	}

	analysisSettings := spectrogram.Settings{
		FFTSize: settings.Spectrogram.FFTSize,
		HopSize: settings.Spectrogram.HopSize,
		Window:  settings.Spectrogram.Window,
		Scale: spectrogram.Scale{
			Kind:  settings.Spectrogram.Scale,
			Power: settings.Spectrogram.Power,
		},
		MinDB: float32(settings.Spectrogram.MinDB),
	}

	set, err := spectrogram.Analyze(buf, analysisSettings)
	if err != nil {
		return nil, newError(KindAnalysisError, err)
	}

	renderSettings := render.Settings{
		Width:       settings.Render.Width,
		Height:      settings.Render.Height,
		Orientation: settings.Render.Orientation,
		Channels:    settings.Render.Channels,
	}

	img, err := render.Render(set, renderSettings)
	if err != nil {
		return nil, newError(KindRenderError, err)
	}

	if legendOpts != nil {
		layout := legend.LayoutCombined
		if settings.Render.Channels == render.Split {
			layout = legend.LayoutSplit
		}

		legendCtx := legend.Context{
			Meta:            buf.Meta,
			DurationSeconds: durationSeconds(buf),
			MinDB:           settings.Spectrogram.MinDB,
			MaxDB:           settings.Spectrogram.MaxDB,
			FileName:        settings.FileName,
			Version:         settings.Version,
			Layout:          layout,
		}

		cmds := legend.Generate(legendOpts.Settings, legendCtx, legendOpts.Margins, settings.Render.Width, settings.Render.Height)
		overlay.Apply(img, cmds, legendOpts.Rasterizer)
	}

	return &Result{
		Image:           img,
		DurationSeconds: durationSeconds(buf),
		SampleRate:      buf.Meta.SampleRate,
		Channels:        buf.Meta.Channels,
		RequestID:       uuid.NewString(),
	}, nil
}

func durationSeconds(buf *audio.Buffer) float64 {
	if buf.Meta.Channels == 0 || buf.Meta.SampleRate == 0 {
		return 0
	}
	samplesPerChannel := int64(len(buf.Samples)) / int64(buf.Meta.Channels)
	return float64(samplesPerChannel) / float64(buf.Meta.SampleRate)
}

// validateSettings enforces the public invariants that must fail fast as
// InvalidInput, before any stage is invoked: zero dims, non-positive
// fft/hop size, and the max_db != 0 constraint spec.md §9's open question
// resolves by rejection rather than silent divergence (the Analyzer only
// ever normalizes against an implicit max of 0 dBFS).
func validateSettings(settings Settings) error {
	if settings.Spectrogram.FFTSize <= 0 || settings.Spectrogram.HopSize <= 0 {
		return fmt.Errorf("spek: fft_size and hop_size must be positive")
	}
	if settings.Render.Width <= 0 || settings.Render.Height <= 0 {
		return fmt.Errorf("spek: width and height must be positive")
	}
	if settings.Spectrogram.MaxDB != 0 {
		return fmt.Errorf("spek: max_db must be 0; the analyzer normalizes only against min_db")
	}
	return nil
}
