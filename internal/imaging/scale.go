package imaging

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// MinScale is the smallest accepted scale factor.
const MinScale = 0.05

// ClampScale maps s into [MinScale, 1]. Non-positive values mean "no scaling".
func ClampScale(s float64) float64 {
	switch {
	case s <= 0 || s >= 1:
		return 1
	case s < MinScale:
		return MinScale
	default:
		return s
	}
}

// Scale resizes img by factor using Catmull-Rom resampling. A factor of 1
// (after clamping) returns img unchanged. The result's bounds start at 0,0.
func Scale(img image.Image, factor float64) image.Image {
	factor = ClampScale(factor)
	if factor == 1 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx())*factor + 0.5)
	h := int(float64(b.Dy())*factor + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// ToRGBA converts any image to RGBA, copying only when needed.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}
