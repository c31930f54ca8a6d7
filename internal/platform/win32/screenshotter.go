//go:build windows

package win32

import (
	"context"
	"fmt"
	"image"
	"unsafe"

	"github.com/kataras/golog"
	"github.com/kbinani/screenshot"
	"github.com/lxn/win"
	"github.com/mj1618/hostctl/internal/imaging"
	"github.com/mj1618/hostctl/internal/model"
	"github.com/mj1618/hostctl/internal/platform"
	"golang.org/x/sys/windows"
)

// Screenshotter implements platform.Screenshotter with GDI.
type Screenshotter struct {
	lister *WindowLister
}

// NewScreenshotter creates a new Windows screenshotter.
func NewScreenshotter(lister *WindowLister) *Screenshotter {
	return &Screenshotter{lister: lister}
}

// Capture copies the selected screen area into an image whose bounds are the
// captured screen rectangle.
func (s *Screenshotter) Capture(ctx context.Context, opts platform.ScreenshotOptions) (image.Image, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.PrintScreenKey {
		return nil, fmt.Errorf("print-screen mode is only used by the WSL bridge: %w", platform.ErrUnsupported)
	}

	if opts.Display > 0 {
		return captureDisplay(opts.Display)
	}

	rect, err := s.resolveRect(ctx, opts)
	if err != nil {
		return nil, err
	}
	golog.Debugf("BitBlt %s at %v", opts.Target(), rect)
	return captureRect(rect)
}

func (s *Screenshotter) resolveRect(ctx context.Context, opts platform.ScreenshotOptions) (image.Rectangle, error) {
	switch {
	case opts.Region != nil:
		return opts.Region.Rect(), nil
	case opts.Window != "" || opts.WindowID != 0:
		return s.windowRect(ctx, opts)
	default:
		return virtualScreen(), nil
	}
}

func (s *Screenshotter) windowRect(ctx context.Context, opts platform.ScreenshotOptions) (image.Rectangle, error) {
	windowsList, err := s.lister.ListWindows(ctx, platform.ListOptions{})
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("failed to list windows: %w", err)
	}
	w, ok := model.FindWindow(windowsList, opts.Window, opts.WindowID)
	if !ok {
		return image.Rectangle{}, fmt.Errorf("%w: %s", platform.ErrWindowNotFound, opts.Target())
	}
	hwnd := windows.HWND(w.Handle)
	iconic := win.IsIconic(win.HWND(hwnd))
	var r image.Rectangle
	if !iconic {
		rect, err := windowRect(hwnd)
		if err != nil {
			return image.Rectangle{}, err
		}
		r = image.Rect(int(rect.Left), int(rect.Top), int(rect.Right), int(rect.Bottom))
	}
	return clipWindowRect(w.Title, iconic, r, virtualScreen())
}

// clipWindowRect clips a window's rectangle to the desktop so off-screen
// parts don't produce black borders.
func clipWindowRect(title string, iconic bool, r, screen image.Rectangle) (image.Rectangle, error) {
	if iconic {
		return image.Rectangle{}, fmt.Errorf("window %q is minimized", title)
	}
	r = r.Intersect(screen)
	if r.Empty() {
		return image.Rectangle{}, fmt.Errorf("window %q is off screen", title)
	}
	return r, nil
}

// virtualScreen returns the bounding rectangle of all monitors.
func virtualScreen() image.Rectangle {
	x := int(win.GetSystemMetrics(win.SM_XVIRTUALSCREEN))
	y := int(win.GetSystemMetrics(win.SM_YVIRTUALSCREEN))
	w := int(win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN))
	h := int(win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN))
	return image.Rect(x, y, x+w, y+h)
}

// captureDisplay captures one monitor; n is 1-based.
func captureDisplay(n int) (image.Image, error) {
	if err := checkDisplay(n, screenshot.NumActiveDisplays()); err != nil {
		return nil, err
	}
	img, err := screenshot.CaptureDisplay(n - 1)
	if err != nil {
		return nil, platform.CallError("CaptureDisplay", err)
	}
	// Re-anchor the image at the display's screen position.
	bounds := screenshot.GetDisplayBounds(n - 1)
	img.Rect = image.Rectangle{Min: bounds.Min, Max: bounds.Min.Add(img.Rect.Size())}
	return img, nil
}

func checkDisplay(n, count int) error {
	if n < 1 || n > count {
		return fmt.Errorf("display %d not found (%d active)", n, count)
	}
	return nil
}

// captureRect performs the bit-block transfer from the screen DC into a
// memory bitmap and reads the pixels back as a top-down 32-bit DIB.
func captureRect(r image.Rectangle) (*image.RGBA, error) {
	width, height := r.Dx(), r.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("empty capture rectangle %v", r)
	}

	hdc := win.GetDC(0)
	if hdc == 0 {
		return nil, platform.CallError("GetDC", nil)
	}
	defer win.ReleaseDC(0, hdc)

	memDC := win.CreateCompatibleDC(hdc)
	if memDC == 0 {
		return nil, platform.CallError("CreateCompatibleDC", nil)
	}
	defer win.DeleteDC(memDC)

	bitmap := win.CreateCompatibleBitmap(hdc, int32(width), int32(height))
	if bitmap == 0 {
		return nil, platform.CallError("CreateCompatibleBitmap", nil)
	}
	defer win.DeleteObject(win.HGDIOBJ(bitmap))

	old := win.SelectObject(memDC, win.HGDIOBJ(bitmap))
	if old == 0 {
		return nil, platform.CallError("SelectObject", nil)
	}
	ok := win.BitBlt(memDC, 0, 0, int32(width), int32(height),
		hdc, int32(r.Min.X), int32(r.Min.Y), win.SRCCOPY|win.CAPTUREBLT)
	// GetDIBits requires the bitmap to be deselected first.
	win.SelectObject(memDC, old)
	if !ok {
		return nil, platform.CallError("BitBlt", nil)
	}

	header := win.BITMAPINFOHEADER{
		BiSize:        uint32(unsafe.Sizeof(win.BITMAPINFOHEADER{})),
		BiWidth:       int32(width),
		BiHeight:      -int32(height), // negative: top-down rows
		BiPlanes:      1,
		BiBitCount:    32,
		BiCompression: win.BI_RGB,
	}
	buf := make([]byte, width*height*4)
	lines := win.GetDIBits(hdc, bitmap, 0, uint32(height), &buf[0],
		(*win.BITMAPINFO)(unsafe.Pointer(&header)), win.DIB_RGB_COLORS)
	if lines == 0 {
		return nil, platform.CallError("GetDIBits", nil)
	}

	return imaging.FromBGRA(buf, width, height, r.Min)
}
