package ggtext

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawTextDoesNotPanicWithoutAFontFile(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	r := New(12, "/nonexistent/font.ttf")

	assert.NotPanics(t, func() {
		r.DrawText(img, 4, 4, "22.1 kHz")
	})
}

func TestNewStoresFontSizeAndPath(t *testing.T) {
	r := New(16, "/some/font.ttf")
	assert.Equal(t, 16.0, r.fontSize)
	assert.Equal(t, "/some/font.ttf", r.fontPath)
}
