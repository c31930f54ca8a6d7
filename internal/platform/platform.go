package platform

import (
	"context"
	"image"

	"github.com/mj1618/hostctl/internal/model"
)

// WindowLister enumerates top-level desktop windows.
type WindowLister interface {
	// ListWindows returns all titled top-level windows, optionally filtered.
	ListWindows(ctx context.Context, opts ListOptions) ([]model.Window, error)
}

// Screenshotter captures screen contents.
type Screenshotter interface {
	// Capture copies the requested region (virtual screen, one display, a
	// window, or a rectangle) into an image. Encoding and scaling are left to
	// the caller.
	Capture(ctx context.Context, opts ScreenshotOptions) (image.Image, error)
}

// Inputter synthesizes mouse input.
type Inputter interface {
	Click(ctx context.Context, opts ClickOptions) error
	MoveMouse(ctx context.Context, x, y int) error
}

// Launcher hands a URL to the host's default browser.
type Launcher interface {
	OpenURL(ctx context.Context, url string) error
}
