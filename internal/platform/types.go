package platform

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "left"
	}
}

// ParseMouseButton converts a string flag value to MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "left", "":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	case "middle":
		return MouseMiddle, nil
	default:
		return MouseLeft, fmt.Errorf("unknown mouse button: %q (expected left, right, or middle)", s)
	}
}

// Bounds represents a screen rectangle.
type Bounds struct {
	X, Y, Width, Height int
}

// Rect converts b to an image.Rectangle in screen coordinates.
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Empty reports whether b has no area.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// BoundsFromRect converts r into Bounds.
func BoundsFromRect(r image.Rectangle) Bounds {
	return Bounds{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// ParseBBox parses a "x,y,w,h" string into a Bounds.
func ParseBBox(s string) (*Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid bbox %q: expected x,y,w,h", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		vals[i] = v
	}
	b := &Bounds{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
	if b.Empty() {
		return nil, fmt.Errorf("invalid bbox %q: width and height must be positive", s)
	}
	return b, nil
}

// ListOptions controls window listing.
type ListOptions struct {
	Title       string // Filter by title substring
	App         string // Filter by process name
	PID         int    // Filter by process ID (0 = unset)
	VisibleOnly bool   // Skip hidden windows
}

// ScreenshotOptions configures what to capture. At most one of Window,
// WindowID, Region or Display selects the source; with none set the whole
// virtual screen (every display) is captured.
type ScreenshotOptions struct {
	Window   string  // Capture window matching this title substring
	WindowID int64   // Capture window by handle
	Region   *Bounds // Capture an absolute screen rectangle
	Display  int     // Capture a single display, 1-based (0 = all displays)

	// PrintScreenKey asks bridged hosts to press Print Screen instead of
	// returning pixels. Capture then returns ErrNoImage on success.
	PrintScreenKey bool
}

// Target describes the selected capture source for logging and errors.
func (o ScreenshotOptions) Target() string {
	switch {
	case o.WindowID != 0:
		return fmt.Sprintf("window 0x%X", o.WindowID)
	case o.Window != "":
		return fmt.Sprintf("window %q", o.Window)
	case o.Region != nil:
		return fmt.Sprintf("region %d,%d,%d,%d", o.Region.X, o.Region.Y, o.Region.Width, o.Region.Height)
	case o.Display > 0:
		return fmt.Sprintf("display %d", o.Display)
	default:
		return "screen"
	}
}

// Validate rejects conflicting selectors.
func (o ScreenshotOptions) Validate() error {
	n := 0
	if o.Window != "" || o.WindowID != 0 {
		n++
	}
	if o.Region != nil {
		n++
	}
	if o.Display > 0 {
		n++
	}
	if n > 1 {
		return fmt.Errorf("specify only one of --window/--window-id, --region, or --display")
	}
	if o.Display < 0 {
		return fmt.Errorf("display index must be 1 or greater")
	}
	if o.Region != nil && o.Region.Empty() {
		return fmt.Errorf("capture region must have positive width and height")
	}
	return nil
}

// ClickOptions configures a synthesized click.
type ClickOptions struct {
	X, Y   int
	Button MouseButton
	Count  int // 1 = single click, 2 = double click
}

// Clicks returns the number of clicks to send, at least one.
func (o ClickOptions) Clicks() int {
	if o.Count < 1 {
		return 1
	}
	return o.Count
}
