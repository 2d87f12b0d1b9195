package overlay

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshitijk4poor/spek-core/pkg/legend"
	"github.com/kshitijk4poor/spek-core/pkg/palette"
)

func blankImage(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestDrawLineHorizontal(t *testing.T) {
	img := blankImage(10, 10)
	Apply(img, []legend.Command{{Kind: legend.KindLine, X1: 1, Y1: 5, X2: 8, Y2: 5}}, nil)

	for x := 1; x <= 8; x++ {
		assert.Equal(t, white, img.RGBAAt(x, 5), "x=%d", x)
	}
	assert.NotEqual(t, white, img.RGBAAt(1, 4))
}

func TestDrawLineDiagonal(t *testing.T) {
	img := blankImage(10, 10)
	Apply(img, []legend.Command{{Kind: legend.KindLine, X1: 0, Y1: 0, X2: 9, Y2: 9}}, nil)

	for i := 0; i <= 9; i++ {
		assert.Equal(t, white, img.RGBAAt(i, i))
	}
}

func TestDrawLineClipsOutOfBounds(t *testing.T) {
	img := blankImage(5, 5)
	assert.NotPanics(t, func() {
		Apply(img, []legend.Command{{Kind: legend.KindLine, X1: -5, Y1: -5, X2: 20, Y2: 20}}, nil)
	})
}

func TestDrawDbfsGradientEndpoints(t *testing.T) {
	img := blankImage(10, 20)
	Apply(img, []legend.Command{{Kind: legend.KindDbfsGradient, X: 5, YTop: 0, YBottom: 19}}, nil)

	top := img.RGBAAt(5, 0)
	bottom := img.RGBAAt(5, 19)

	assert.Equal(t, palette.Map(1), top)
	assert.InDelta(t, 0, float64(bottom.R)-float64(palette.Map(0).R), 5)
}

func TestApplyWithNilRasterizerDoesNotPanic(t *testing.T) {
	img := blankImage(10, 10)
	assert.NotPanics(t, func() {
		Apply(img, []legend.Command{{Kind: legend.KindText, X: 1, Y: 1, Content: "hi"}}, nil)
	})
}

type recordingRasterizer struct {
	calls []string
}

func (r *recordingRasterizer) DrawText(img *image.RGBA, x, y int, content string) {
	r.calls = append(r.calls, content)
}

func TestApplyDelegatesTextToRasterizer(t *testing.T) {
	img := blankImage(10, 10)
	rr := &recordingRasterizer{}
	Apply(img, []legend.Command{{Kind: legend.KindText, X: 1, Y: 1, Content: "Time"}}, rr)

	require.Len(t, rr.calls, 1)
	assert.Equal(t, "Time", rr.calls[0])
}
