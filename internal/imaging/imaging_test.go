package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestFromBGRA(t *testing.T) {
	// 2x1 bitmap: blue pixel then red pixel, alpha bytes left at zero.
	buf := []byte{
		0xff, 0x00, 0x00, 0x00,
		0x00, 0x00, 0xff, 0x00,
	}
	img, err := FromBGRA(buf, 2, 1, image.Pt(-1920, 0))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(-1920, 0, -1918, 1), img.Bounds())
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, img.RGBAAt(-1920, 0))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(-1919, 0))
}

func TestFromBGRA_Invalid(t *testing.T) {
	_, err := FromBGRA(make([]byte, 8), 0, 1, image.Point{})
	assert.Error(t, err)
	_, err = FromBGRA(make([]byte, 4), 2, 1, image.Point{})
	assert.Error(t, err)
}

func TestClampScale(t *testing.T) {
	assert.Equal(t, 1.0, ClampScale(0))
	assert.Equal(t, 1.0, ClampScale(-2))
	assert.Equal(t, 1.0, ClampScale(1.5))
	assert.Equal(t, 0.5, ClampScale(0.5))
	assert.Equal(t, MinScale, ClampScale(0.001))
}

func TestScale(t *testing.T) {
	img := solid(200, 100, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	same := Scale(img, 1)
	assert.Same(t, img, same)

	half := Scale(img, 0.5)
	assert.Equal(t, image.Rect(0, 0, 100, 50), half.Bounds())
	r, g, b, _ := half.At(50, 25).RGBA()
	assert.InDelta(t, 10, r>>8, 1)
	assert.InDelta(t, 20, g>>8, 1)
	assert.InDelta(t, 30, b>>8, 1)
}

func TestScale_NonZeroOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(-100, -50, 100, 50))
	half := Scale(img, 0.5)
	assert.Equal(t, image.Rect(0, 0, 100, 50), half.Bounds())
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{"": PNG, "png": PNG, "PNG": PNG, "jpg": JPEG, "JPEG": JPEG}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("bmp")
	assert.Error(t, err)
}

func TestFormatMeta(t *testing.T) {
	assert.Equal(t, "image/png", PNG.MIMEType())
	assert.Equal(t, "image/jpeg", JPEG.MIMEType())
	assert.Equal(t, ".png", PNG.Ext())
	assert.Equal(t, ".jpg", JPEG.Ext())
}

func TestEncode_PNG(t *testing.T) {
	img := solid(4, 3, color.RGBA{G: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, PNG, 0))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), decoded.Bounds())
}

func TestEncode_JPEGQuality(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 37 % 256), G: uint8(y * 53 % 256), B: uint8((x ^ y) * 11 % 256), A: 255})
		}
	}

	var low, high bytes.Buffer
	require.NoError(t, Encode(&low, img, JPEG, -5))
	require.NoError(t, Encode(&high, img, JPEG, 500))

	_, err := jpeg.Decode(bytes.NewReader(low.Bytes()))
	require.NoError(t, err)
	assert.Less(t, low.Len(), high.Len())
}

func TestEncode_Unknown(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, solid(1, 1, color.RGBA{}), Format("gif"), 0))
}

func TestDrawGrid(t *testing.T) {
	black := color.RGBA{A: 255}
	img := solid(300, 300, black)

	out := DrawGrid(img, image.Pt(50, 50), 1, 100)
	require.NotSame(t, img, out)
	assert.Equal(t, black, img.RGBAAt(50, 0), "input must not be modified")

	// Screen x=100 is image x=50: the vertical line is drawn there.
	assert.NotEqual(t, black, out.RGBAAt(50, 290))
	// Screen y=200 is image y=150.
	assert.NotEqual(t, black, out.RGBAAt(290, 150))
	// Between lines the pixels stay untouched.
	assert.Equal(t, black, out.RGBAAt(20, 20))
}

func TestDrawGrid_Disabled(t *testing.T) {
	img := solid(10, 10, color.RGBA{A: 255})
	out := DrawGrid(img, image.Point{}, 1, 0)
	assert.Equal(t, img.Pix, out.Pix)
}

func TestCeilMultiple(t *testing.T) {
	assert.Equal(t, 0, ceilMultiple(0, 100))
	assert.Equal(t, 100, ceilMultiple(1, 100))
	assert.Equal(t, 200, ceilMultiple(200, 100))
	assert.Equal(t, -1900, ceilMultiple(-1920, 100))
	assert.Equal(t, -100, ceilMultiple(-100, 100))
}
