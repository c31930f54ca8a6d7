//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Procs that neither x/sys/windows nor lxn/win bind.
var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procSetProcessDPIAware   = user32.NewProc("SetProcessDPIAware")
)

// maxTitleLen caps how much of a window title is read.
const maxTitleLen = 512

func windowText(hwnd windows.HWND) string {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(hwnd))
	if n == 0 {
		return ""
	}
	if n > maxTitleLen {
		n = maxTitleLen
	}
	buf := make([]uint16, n+1)
	copied, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if copied == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:copied])
}
