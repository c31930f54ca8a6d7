//go:build windows

package win32

import (
	"context"
	"os/exec"
	"strings"

	"github.com/kataras/golog"
	"github.com/mj1618/hostctl/internal/platform"
	"golang.org/x/sys/windows"
)

// Launcher implements platform.Launcher with ShellExecute.
type Launcher struct{}

// NewLauncher creates a new Windows launcher.
func NewLauncher() *Launcher {
	return &Launcher{}
}

// OpenURL opens url with the registered handler (the default browser for
// http/https). When ShellExecute fails it falls back to the URL protocol
// handler in url.dll, which avoids cmd.exe metacharacter parsing.
func (l *Launcher) OpenURL(ctx context.Context, url string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(url)
	if err != nil {
		return err
	}

	err = windows.ShellExecute(0, verb, file, nil, nil, windows.SW_SHOWNORMAL)
	if err == nil {
		golog.Debugf("ShellExecute open %s", url)
		return nil
	}
	golog.Warnf("ShellExecute failed (%v), falling back to rundll32", err)

	cmd := exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	if out, err := cmd.CombinedOutput(); err != nil {
		return &platform.OSCallError{Op: "rundll32", Err: err, Output: strings.TrimSpace(string(out))}
	}
	return nil
}
