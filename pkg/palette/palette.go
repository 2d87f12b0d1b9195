// Package palette maps normalized intensity in [0,1] to RGBA color. It is
// the canonical Spek-style pseudo-thermal gradient defined in spec.md §4.4:
// four linear YUV segments converted to RGB via full-range BT.601. Ported
// from the pseudo-thermal palette shape in original_source/color/spek.rs,
// but the segment endpoints and YUV math follow spec.md exactly (the
// original is plain RGB interpolation, not YUV).
package palette

import "image/color"

type segment struct {
	loIntensity, hiIntensity float64
	loY, loU, loV            float64
	hiY, hiU, hiV            float64
}

var segments = [4]segment{
	{0.00, 0.25, 0.05, 0.50, 0.60, 0.20, 0.60, 0.70},
	{0.25, 0.50, 0.20, 0.60, 0.70, 0.45, 0.45, 0.40},
	{0.50, 0.75, 0.45, 0.45, 0.40, 0.75, 0.35, 0.25},
	{0.75, 1.00, 0.75, 0.35, 0.25, 1.00, 0.50, 0.50},
}

// Map converts a normalized intensity (clamped to [0,1] on entry) to an
// opaque RGBA color.
func Map(intensity float32) color.RGBA {
	v := clamp01(float64(intensity))

	seg := segments[len(segments)-1]
	for _, s := range segments {
		if v <= s.hiIntensity || s == segments[len(segments)-1] {
			seg = s
			break
		}
	}

	span := seg.hiIntensity - seg.loIntensity
	t := 0.0
	if span > 0 {
		t = (v - seg.loIntensity) / span
	}

	y := lerp(seg.loY, seg.hiY, t)
	u := lerp(seg.loU, seg.hiU, t)
	vv := lerp(seg.loV, seg.hiV, t)

	return yuvToRGBA(y, u, vv)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// yuvToRGBA converts normalized (y,u,v) triplets to RGBA via full-range
// BT.601, per spec.md §4.4:
//
//	Y = 255*y, U = 128+(u-0.5)*255, V = 128+(v-0.5)*255
//	R = Y + 1.402*(V-128)
//	G = Y - 0.344136*(U-128) - 0.714136*(V-128)
//	B = Y + 1.772*(U-128)
func yuvToRGBA(y, u, v float64) color.RGBA {
	Y := 255 * y
	U := 128 + (u-0.5)*255
	V := 128 + (v-0.5)*255

	r := Y + 1.402*(V-128)
	g := Y - 0.344136*(U-128) - 0.714136*(V-128)
	b := Y + 1.772*(U-128)

	return color.RGBA{
		R: clampByte(r),
		G: clampByte(g),
		B: clampByte(b),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
