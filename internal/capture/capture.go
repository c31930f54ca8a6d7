// Package capture turns a raw screen capture into encoded image bytes:
// scale, optional coordinate grid, then PNG or JPEG encoding. The CLI and
// the MCP server share it so both produce identical images.
package capture

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/kataras/golog"
	"github.com/mj1618/hostctl/internal/imaging"
	"github.com/mj1618/hostctl/internal/platform"
)

// Request describes a screenshot and how to encode it.
type Request struct {
	platform.ScreenshotOptions
	Format  imaging.Format
	Quality int     // JPEG quality 1-100, 0 = default
	Scale   float64 // 0 or 1 = full size
	Grid    int     // grid spacing in screen pixels, 0 = no grid
}

// Shot is an encoded screenshot.
type Shot struct {
	Data   []byte
	Format imaging.Format
	Width  int
	Height int
	// Origin is the screen position of the top-left pixel.
	Origin image.Point
	Scale  float64
	Target string
}

// Take captures with s and encodes the result according to req.
func Take(ctx context.Context, s platform.Screenshotter, req Request) (*Shot, error) {
	if req.Grid < 0 {
		return nil, fmt.Errorf("grid spacing must not be negative")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	img, err := s.Capture(ctx, req.ScreenshotOptions)
	if err != nil {
		return nil, err
	}
	return Process(img, req)
}

// Process scales, annotates and encodes an already captured image.
func Process(img image.Image, req Request) (*Shot, error) {
	if img == nil {
		return nil, platform.ErrNoImage
	}
	origin := img.Bounds().Min
	scale := imaging.ClampScale(req.Scale)

	out := imaging.Scale(img, scale)
	if req.Grid > 0 {
		out = imaging.DrawGrid(out, origin, scale, req.Grid)
	}

	format := req.Format
	if format == "" {
		format = imaging.PNG
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, format, req.Quality); err != nil {
		return nil, err
	}
	b := out.Bounds()
	golog.Debugf("encoded %s: %dx%d %s, %d bytes", req.Target(), b.Dx(), b.Dy(), format, buf.Len())
	return &Shot{
		Data:   buf.Bytes(),
		Format: format,
		Width:  b.Dx(),
		Height: b.Dy(),
		Origin: origin,
		Scale:  scale,
		Target: req.Target(),
	}, nil
}
