//go:build windows

package win32

import (
	"context"
	"sync"

	"github.com/kataras/golog"
	"github.com/lxn/win"
	"github.com/mj1618/hostctl/internal/model"
	"github.com/mj1618/hostctl/internal/platform"
	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/windows"
)

// EnumWindows callbacks are a finite process-wide resource, so one callback
// is created up front and feeds whichever enumeration holds enumMu.
var (
	enumMu       sync.Mutex
	enumHandles  []windows.HWND
	enumCallback = windows.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
		enumHandles = append(enumHandles, hwnd)
		return 1 // continue enumeration
	})
)

func enumTopLevelWindows() ([]windows.HWND, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumHandles = nil
	if err := windows.EnumWindows(enumCallback, nil); err != nil {
		return nil, platform.CallError("EnumWindows", err)
	}
	handles := enumHandles
	enumHandles = nil
	return handles, nil
}

// windowSource reads attributes of a window handle.
type windowSource interface {
	Title(hwnd windows.HWND) string
	PID(hwnd windows.HWND) uint32
	Bounds(hwnd windows.HWND) [4]int
	Visible(hwnd windows.HWND) bool
}

// user32Source reads window attributes from user32.
type user32Source struct{}

func (user32Source) Title(hwnd windows.HWND) string { return windowText(hwnd) }

func (user32Source) PID(hwnd windows.HWND) uint32 {
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err != nil {
		golog.Debugf("GetWindowThreadProcessId(0x%X): %v", hwnd, err)
	}
	return pid
}

func (user32Source) Bounds(hwnd windows.HWND) [4]int {
	rect, err := windowRect(hwnd)
	if err != nil {
		return [4]int{}
	}
	return [4]int{
		int(rect.Left), int(rect.Top),
		int(rect.Right - rect.Left), int(rect.Bottom - rect.Top),
	}
}

func (user32Source) Visible(hwnd windows.HWND) bool { return windows.IsWindowVisible(hwnd) }

// WindowLister implements platform.WindowLister with EnumWindows.
type WindowLister struct {
	enum        func() ([]windows.HWND, error)
	foreground  func() windows.HWND
	source      windowSource
	processName func(ctx context.Context, pid uint32) string
}

// NewWindowLister creates a new Windows window lister.
func NewWindowLister() *WindowLister {
	return &WindowLister{
		enum:        enumTopLevelWindows,
		foreground:  windows.GetForegroundWindow,
		source:      user32Source{},
		processName: processName,
	}
}

// ListWindows returns every top-level window with a non-empty title.
func (l *WindowLister) ListWindows(ctx context.Context, opts platform.ListOptions) ([]model.Window, error) {
	handles, err := l.enum()
	if err != nil {
		return nil, err
	}
	golog.Debugf("EnumWindows returned %d handles", len(handles))

	foreground := l.foreground()
	names := make(map[uint32]string)

	var windowsList []model.Window
	for _, hwnd := range handles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		title := l.source.Title(hwnd)
		if title == "" {
			continue
		}

		pid := l.source.PID(hwnd)
		app, ok := names[pid]
		if !ok {
			app = l.processName(ctx, pid)
			names[pid] = app
		}

		windowsList = append(windowsList, model.Window{
			Title:   title,
			Handle:  int64(hwnd),
			PID:     int(pid),
			App:     app,
			Bounds:  l.source.Bounds(hwnd),
			Visible: l.source.Visible(hwnd),
			Focused: hwnd == foreground,
		})
	}

	return model.FilterWindows(windowsList, model.WindowFilter{
		Title:       opts.Title,
		App:         opts.App,
		PID:         opts.PID,
		VisibleOnly: opts.VisibleOnly,
	}), nil
}

// processName resolves a PID to its executable name, or "" if the process
// cannot be opened (e.g. elevated processes from an unelevated caller).
func processName(ctx context.Context, pid uint32) string {
	if pid == 0 {
		return ""
	}
	p, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return ""
	}
	name, err := p.NameWithContext(ctx)
	if err != nil {
		golog.Debugf("process name for pid %d: %v", pid, err)
		return ""
	}
	return name
}

// windowRect returns the screen rectangle of hwnd.
func windowRect(hwnd windows.HWND) (win.RECT, error) {
	var rect win.RECT
	if !win.GetWindowRect(win.HWND(hwnd), &rect) {
		return rect, platform.CallError("GetWindowRect", nil)
	}
	return rect, nil
}
