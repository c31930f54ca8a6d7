package imaging

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	gridLineColor    = color.RGBA{R: 255, G: 0, B: 0, A: 160}
	gridTextColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gridOutlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 220}
)

// DrawGrid overlays a coordinate grid on img so that screen positions can be
// read off the picture and passed to click.
//
// origin is the screen coordinate of the captured area's top-left corner,
// scale the ratio of image pixels to screen pixels (1 for an unscaled
// capture), and step the grid spacing in screen pixels. Each intersection is
// labelled with its absolute screen coordinate.
func DrawGrid(img image.Image, origin image.Point, scale float64, step int) *image.RGBA {
	rgba := copyRGBA(img)
	if step <= 0 || scale <= 0 {
		return rgba
	}
	b := rgba.Bounds()
	screenW := int(float64(b.Dx()) / scale)
	screenH := int(float64(b.Dy()) / scale)

	// First grid line at the next multiple of step at or after the origin.
	firstX := ceilMultiple(origin.X, step)
	firstY := ceilMultiple(origin.Y, step)

	for sx := firstX; sx < origin.X+screenW; sx += step {
		px := b.Min.X + int(float64(sx-origin.X)*scale)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			rgba.Set(px, y, gridLineColor)
		}
	}
	for sy := firstY; sy < origin.Y+screenH; sy += step {
		py := b.Min.Y + int(float64(sy-origin.Y)*scale)
		for x := b.Min.X; x < b.Max.X; x++ {
			rgba.Set(x, py, gridLineColor)
		}
	}
	for sx := firstX; sx < origin.X+screenW; sx += step {
		for sy := firstY; sy < origin.Y+screenH; sy += step {
			px := b.Min.X + int(float64(sx-origin.X)*scale)
			py := b.Min.Y + int(float64(sy-origin.Y)*scale)
			drawLabel(rgba, fmt.Sprintf("(%d,%d)", sx, sy), px+3, py+13)
		}
	}
	return rgba
}

func ceilMultiple(v, step int) int {
	r := v % step
	switch {
	case r == 0:
		return v
	case r < 0:
		return v - r
	default:
		return v + step - r
	}
}

func copyRGBA(img image.Image) *image.RGBA {
	src := ToRGBA(img)
	if src != img {
		return src
	}
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// drawLabel draws text with a one-pixel outline; (x, y) is the baseline start.
func drawLabel(img *image.RGBA, text string, x, y int) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(img, text, x+dx, y+dy, gridOutlineColor)
		}
	}
	drawString(img, text, x, y, gridTextColor)
}

func drawString(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
