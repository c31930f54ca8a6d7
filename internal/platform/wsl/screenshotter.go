package wsl

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strconv"
	"strings"

	"github.com/kataras/golog"
	"github.com/mj1618/hostctl/internal/imaging"
	"github.com/mj1618/hostctl/internal/model"
	"github.com/mj1618/hostctl/internal/platform"
)

// minimizedOrigin is where Windows parks minimized windows.
const minimizedOrigin = -32000

const captureTemplate = dpiPrelude + `Add-Type -AssemblyName System.Drawing
Add-Type -AssemblyName System.Windows.Forms
%s
$bmp = New-Object System.Drawing.Bitmap $r.Width, $r.Height
$g = [System.Drawing.Graphics]::FromImage($bmp)
$g.CopyFromScreen($r.Left, $r.Top, 0, 0, $r.Size)
$ms = New-Object System.IO.MemoryStream
$bmp.Save($ms, [System.Drawing.Imaging.ImageFormat]::Png)
$g.Dispose()
$bmp.Dispose()
'{0},{1}' -f $r.Left, $r.Top
[Convert]::ToBase64String($ms.ToArray())
`

const printScreenScript = `$ErrorActionPreference = 'Stop'
Add-Type -AssemblyName System.Windows.Forms
[System.Windows.Forms.SendKeys]::SendWait('{PRTSC}')
`

// Screenshotter implements platform.Screenshotter by copying the Windows
// screen with System.Drawing and reading the PNG back over stdout.
type Screenshotter struct {
	ps     powerShell
	lister *WindowLister
}

// NewScreenshotter creates a bridged screenshotter. The lister resolves
// window selectors to screen rectangles.
func NewScreenshotter(runner Runner, powerShellExe string, lister *WindowLister) *Screenshotter {
	return &Screenshotter{ps: powerShell{runner: runner, exe: powerShellExe}, lister: lister}
}

func (s *Screenshotter) Capture(ctx context.Context, opts platform.ScreenshotOptions) (image.Image, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.PrintScreenKey {
		if _, err := s.ps.run(ctx, printScreenScript); err != nil {
			return nil, err
		}
		return nil, platform.ErrNoImage
	}

	selector, err := s.rectScript(ctx, opts)
	if err != nil {
		return nil, err
	}
	golog.Debugf("bridge capture %s", opts.Target())
	out, err := s.ps.run(ctx, fmt.Sprintf(captureTemplate, selector))
	if err != nil {
		return nil, err
	}
	return parseCapture(out)
}

// rectScript returns the PowerShell statement assigning the capture
// rectangle to $r.
func (s *Screenshotter) rectScript(ctx context.Context, opts platform.ScreenshotOptions) (string, error) {
	switch {
	case opts.Region != nil:
		return regionScript(*opts.Region), nil
	case opts.Window != "" || opts.WindowID != 0:
		b, err := s.windowBounds(ctx, opts)
		if err != nil {
			return "", err
		}
		return regionScript(b), nil
	case opts.Display > 0:
		return fmt.Sprintf(`$screens = [System.Windows.Forms.Screen]::AllScreens
if ($screens.Count -lt %[1]d) { throw "display %[1]d not found ($($screens.Count) active)" }
$r = $screens[%[2]d].Bounds`, opts.Display, opts.Display-1), nil
	default:
		return `$r = [System.Windows.Forms.SystemInformation]::VirtualScreen`, nil
	}
}

func regionScript(b platform.Bounds) string {
	return fmt.Sprintf("$r = New-Object System.Drawing.Rectangle %d, %d, %d, %d", b.X, b.Y, b.Width, b.Height)
}

func (s *Screenshotter) windowBounds(ctx context.Context, opts platform.ScreenshotOptions) (platform.Bounds, error) {
	windows, err := s.lister.ListWindows(ctx, platform.ListOptions{})
	if err != nil {
		return platform.Bounds{}, fmt.Errorf("failed to list windows: %w", err)
	}
	w, ok := model.FindWindow(windows, opts.Window, opts.WindowID)
	if !ok {
		return platform.Bounds{}, fmt.Errorf("%w: %s", platform.ErrWindowNotFound, opts.Target())
	}
	b := platform.Bounds{X: w.Bounds[0], Y: w.Bounds[1], Width: w.Bounds[2], Height: w.Bounds[3]}
	if b.X <= minimizedOrigin && b.Y <= minimizedOrigin {
		return platform.Bounds{}, fmt.Errorf("window %q is minimized", w.Title)
	}
	if b.Empty() {
		return platform.Bounds{}, fmt.Errorf("window %q has no visible area", w.Title)
	}
	return b, nil
}

// parseCapture decodes the "left,top" line followed by base64 PNG data and
// anchors the image at its screen position.
func parseCapture(out []byte) (image.Image, error) {
	text := strings.TrimSpace(string(out))
	head, body, ok := strings.Cut(text, "\n")
	if !ok {
		return nil, fmt.Errorf("unexpected capture output from host: %q", truncateOutput(text))
	}
	origin, err := parseOrigin(strings.TrimSpace(head))
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(body))
	if err != nil {
		return nil, fmt.Errorf("decode capture data: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode capture png: %w", err)
	}
	rgba := imaging.ToRGBA(img)
	rgba.Rect = rgba.Rect.Sub(rgba.Rect.Min).Add(origin)
	return rgba, nil
}

func parseOrigin(s string) (image.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid capture origin %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid capture origin %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid capture origin %q: %w", s, err)
	}
	return image.Pt(x, y), nil
}

func truncateOutput(s string) string {
	if len(s) > 120 {
		return s[:117] + "..."
	}
	return s
}
