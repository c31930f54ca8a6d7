package imaging

import (
	"fmt"
	"image"
)

// FromBGRA converts a top-down 32-bit BGRA buffer (the layout GetDIBits
// produces for a negative-height BI_RGB bitmap) to an RGBA image whose
// bounds start at origin. The alpha byte of screen DIBs is undefined, so
// every pixel is made opaque.
func FromBGRA(buf []byte, width, height int, origin image.Point) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid bitmap size %dx%d", width, height)
	}
	if len(buf) < width*height*4 {
		return nil, fmt.Errorf("bitmap buffer too small: %d bytes for %dx%d", len(buf), width, height)
	}
	img := image.NewRGBA(image.Rect(origin.X, origin.Y, origin.X+width, origin.Y+height))
	for i := 0; i < width*height*4; i += 4 {
		img.Pix[i+0] = buf[i+2]
		img.Pix[i+1] = buf[i+1]
		img.Pix[i+2] = buf[i+0]
		img.Pix[i+3] = 0xff
	}
	return img, nil
}
