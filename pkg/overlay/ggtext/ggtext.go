// Package ggtext implements overlay.TextRasterizer using
// github.com/fogleman/gg, grounded on the fogleman/gg dependency carried
// by the tphakala-go-spectrogram example's go.mod for the same purpose
// (labeling a rendered spectrogram). This is the one non-stub
// TextRasterizer the core ships; callers that don't need visible labels
// keep using overlay.NoopTextRasterizer.
package ggtext

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Rasterizer draws text directly onto the target *image.RGBA using a
// freetype-backed font face, loaded from disk on every DrawText call.
type Rasterizer struct {
	fontSize float64
	fontPath string
}

// New returns a Rasterizer that renders at fontSize points. If fontPath is
// empty, the TTF at defaultFontPath is used. If the font cannot be loaded,
// DrawText draws nothing.
func New(fontSize float64, fontPath string) *Rasterizer {
	return &Rasterizer{fontSize: fontSize, fontPath: fontPath}
}

// DrawText implements overlay.TextRasterizer by wrapping img in a gg
// context backed by the same pixel buffer, so drawing mutates img in
// place rather than a copy.
func (r *Rasterizer) DrawText(img *image.RGBA, x, y int, content string) {
	dc := gg.NewContextForRGBA(img)

	if r.fontPath != "" {
		if err := dc.LoadFontFace(r.fontPath, r.fontSize); err != nil {
			return
		}
	} else if err := dc.LoadFontFace(defaultFontPath, r.fontSize); err != nil {
		return
	}

	dc.SetColor(color.White)
	_, lineHeight := dc.MeasureString(content)
	dc.DrawString(content, float64(x), float64(y)+lineHeight)
}

// defaultFontPath is a best-effort common location; callers that need a
// reliable face should pass an explicit fontPath to New.
const defaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
