//go:build windows

package win32

import (
	"sync"

	"github.com/kataras/golog"
	"github.com/mj1618/hostctl/internal/platform"
)

var dpiOnce sync.Once

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		// Without DPI awareness GDI and SetCursorPos work in scaled
		// coordinates and captures come out blurry on high-DPI displays.
		dpiOnce.Do(func() {
			if r, _, err := procSetProcessDPIAware.Call(); r == 0 {
				golog.Warnf("SetProcessDPIAware: %v", err)
			}
		})

		lister := NewWindowLister()
		return &platform.Provider{
			Host:          platform.HostWindows,
			WindowLister:  lister,
			Screenshotter: NewScreenshotter(lister),
			Inputter:      NewInputter(),
			Launcher:      NewLauncher(),
		}, nil
	}
}
