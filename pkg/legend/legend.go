// Package legend generates the resolution-independent draw-command
// sequence for axes, ticks, labels and the dBFS gradient key. It performs
// no rasterization itself — see pkg/overlay for that — and is a pure
// function of its inputs, grounded on original_source/legend/simple.rs's
// SimpleLegendRenderer::generate emission order.
package legend

import (
	"fmt"
	"math"

	"github.com/kshitijk4poor/spek-core/pkg/audio"
)

// Kind tags which draw operation a Command carries. Only the Command
// fields belonging to that kind (Line, Text or DbfsGradient) are meaningful.
type Kind int

const (
	KindLine Kind = iota
	KindText
	KindDbfsGradient
)

// Command is one emitted draw instruction.
type Command struct {
	Kind Kind

	// Line
	X1, Y1, X2, Y2 int

	// Text: anchored at (X, Y), top-left of the glyph box.
	X, Y    int
	Content string

	// DbfsGradient
	YTop, YBottom int
}

func lineCmd(x1, y1, x2, y2 int) Command {
	return Command{Kind: KindLine, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func textCmd(x, y int, content string) Command {
	return Command{Kind: KindText, X: x, Y: y, Content: content}
}

func gradientCmd(x, yTop, yBottom int) Command {
	return Command{Kind: KindDbfsGradient, X: x, YTop: yTop, YBottom: yBottom}
}

// Layout tells the legend whether the renderer laid the image out as one
// combined band or as per-channel split bands. Passed explicitly rather
// than inferred from channel count (spec.md §9's open correction).
type Layout int

const (
	LayoutCombined Layout = iota
	LayoutSplit
)

// Context bundles audio metadata and render context the legend needs.
type Context struct {
	Meta            audio.Metadata
	DurationSeconds float64
	MinDB, MaxDB    float64
	FileName        string // optional; empty to omit the header
	Version         string // optional; empty to omit the version label
	Layout          Layout
}

// Margins in pixels, measured from each edge of the image.
type Margins struct {
	Left, Right, Top, Bottom int
}

// Settings controls tick density and label sizing.
type Settings struct {
	FreqTicks, TimeTicks, DbTicks int
	FontSize                      int
}

// Generate produces the full ordered command sequence for one legend.
func Generate(settings Settings, ctx Context, margins Margins, imageW, imageH int) []Command {
	var cmds []Command

	l := margins.Left
	r := imageW - margins.Right
	t := margins.Top
	b := imageH - margins.Bottom

	if ctx.FileName != "" || ctx.Version != "" {
		cmds = append(cmds, header(settings, ctx, l, r, t)...)
	}

	cmds = append(cmds, frame(l, r, t, b)...)
	cmds = append(cmds, timeAxis(settings, ctx, l, r, t, b)...)
	cmds = append(cmds, frequencyAxis(settings, ctx, l, r, t, b)...)
	cmds = append(cmds, dbfsGradient(r, t, b)...)
	cmds = append(cmds, dbfsTicks(settings, ctx, r, t, b)...)

	return cmds
}

func header(settings Settings, ctx Context, l, r, t int) []Command {
	y := t - (settings.FontSize + 8)
	var cmds []Command

	if ctx.FileName != "" {
		cmds = append(cmds, textCmd(l, y, ctx.FileName))
	}

	info := fmt.Sprintf("%d Hz · %s · %s", ctx.Meta.SampleRate, channelName(ctx.Meta.Channels), bitDepthName(ctx.Meta.BitDepth))
	cmds = append(cmds, textCmd((l+r)/2-80, y, info))

	if ctx.Version != "" {
		cmds = append(cmds, textCmd(r-140, y, ctx.Version))
	}

	return cmds
}

func channelName(channels int) string {
	switch channels {
	case 1:
		return "Mono"
	case 2:
		return "Stereo"
	default:
		return fmt.Sprintf("%d ch", channels)
	}
}

func bitDepthName(bitDepth *int) string {
	if bitDepth == nil {
		return "unknown bit"
	}
	return fmt.Sprintf("%d-bit", *bitDepth)
}

func frame(l, r, t, b int) []Command {
	return []Command{
		lineCmd(l, t, l, b),
		lineCmd(l, b, r, b),
		lineCmd(r, t, r, b),
	}
}

func timeAxis(settings Settings, ctx Context, l, r, t, b int) []Command {
	var cmds []Command
	ticks := settings.TimeTicks
	if ticks <= 0 {
		ticks = 1
	}

	for i := 0; i <= ticks; i++ {
		x := l + roundInt(float64(r-l)*float64(i)/float64(ticks))

		cmds = append(cmds, lineCmd(x, saturatingAdd(b, 6), x, b))
		cmds = append(cmds, lineCmd(x, t, x, saturatingSubInt(t, 6)))

		total := ctx.DurationSeconds * float64(i) / float64(ticks)
		m := int(total / 60)
		s := int(math.Mod(total, 60))
		cmds = append(cmds, textCmd(x, b+16, fmt.Sprintf("%d:%02d", m, s)))
	}

	cmds = append(cmds, textCmd((l+r)/2, b+28, "Time"))
	return cmds
}

func frequencyAxis(settings Settings, ctx Context, l, r, t, b int) []Command {
	nyquist := float64(ctx.Meta.SampleRate) / 2

	bands := 1
	if ctx.Layout == LayoutSplit && ctx.Meta.Channels > 1 {
		bands = 2
	}

	var cmds []Command
	totalHeight := b - t
	bandHeight := totalHeight / bands

	freqTicks := settings.FreqTicks
	if freqTicks < 1 {
		freqTicks = 1
	}

	for band := 0; band < bands; band++ {
		bandBottom := b - band*bandHeight
		thisBandHeight := bandHeight
		if band == bands-1 {
			thisBandHeight = totalHeight - band*bandHeight
		}

		divisor := maxInt(24, (b-t)/maxInt(2, freqTicks))
		ticks := maxInt(thisBandHeight/divisor, 2)

		for i := 0; i <= ticks; i++ {
			y := bandBottom - roundInt(float64(thisBandHeight)*float64(i)/float64(ticks))
			freq := nyquist * float64(i) / float64(ticks)

			cmds = append(cmds, lineCmd(saturatingSubInt(l, 6), y, l, y))
			cmds = append(cmds, lineCmd(r, y, r+6, y))

			if bands > 1 && band == 0 && i == ticks {
				// Lower band's Nyquist label is skipped to avoid overlap
				// with the band above it.
				continue
			}
			cmds = append(cmds, textCmd(saturatingSubInt(l, 6)-40, y-settings.FontSize/2, freqLabel(freq)))
		}
	}

	return cmds
}

func freqLabel(freqHz float64) string {
	kHz := freqHz / 1000
	if math.Mod(freqHz, 1000) == 0 {
		return fmt.Sprintf("%.0f kHz", kHz)
	}
	return fmt.Sprintf("%.1f kHz", kHz)
}

func dbfsGradient(r, t, b int) []Command {
	return []Command{gradientCmd(r+34, t, b)}
}

func dbfsTicks(settings Settings, ctx Context, r, t, b int) []Command {
	var cmds []Command
	ticks := settings.DbTicks
	if ticks <= 0 {
		ticks = 1
	}

	for i := 0; i <= ticks; i++ {
		frac := float64(i) / float64(ticks)
		y := b - roundInt(float64(b-t)*frac)
		db := ctx.MinDB + (ctx.MaxDB-ctx.MinDB)*frac

		cmds = append(cmds, lineCmd(r, y, r+6, y))
		cmds = append(cmds, textCmd(r+10, y-settings.FontSize/2, fmt.Sprintf("%.0f", db)))
	}

	cmds = append(cmds, textCmd(r+10, b+28, "dBFS"))
	return cmds
}

func roundInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func saturatingSubInt(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

func saturatingAdd(a, b int) int {
	return a + b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
