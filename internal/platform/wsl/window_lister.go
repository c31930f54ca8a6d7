package wsl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kataras/golog"
	"github.com/mj1618/hostctl/internal/model"
	"github.com/mj1618/hostctl/internal/platform"
)

// listWindowsScript enumerates top-level windows with EnumWindows on the
// Windows side and prints them as a JSON array.
const listWindowsScript = dpiPrelude + `Add-Type -TypeDefinition @'
using System;
using System.Collections.Generic;
using System.Runtime.InteropServices;
using System.Text;
public static class HostctlWindows {
    public delegate bool EnumProc(IntPtr hwnd, IntPtr lparam);
    [StructLayout(LayoutKind.Sequential)]
    public struct RECT { public int Left, Top, Right, Bottom; }
    [DllImport("user32.dll")] static extern bool EnumWindows(EnumProc cb, IntPtr lparam);
    [DllImport("user32.dll", CharSet = CharSet.Unicode)] static extern int GetWindowText(IntPtr hwnd, StringBuilder s, int n);
    [DllImport("user32.dll")] static extern bool IsWindowVisible(IntPtr hwnd);
    [DllImport("user32.dll")] static extern uint GetWindowThreadProcessId(IntPtr hwnd, out uint pid);
    [DllImport("user32.dll")] static extern bool GetWindowRect(IntPtr hwnd, out RECT r);
    [DllImport("user32.dll")] static extern IntPtr GetForegroundWindow();
    public static List<object> List() {
        var list = new List<object>();
        IntPtr fg = GetForegroundWindow();
        EnumWindows(delegate (IntPtr h, IntPtr l) {
            var sb = new StringBuilder(512);
            if (GetWindowText(h, sb, sb.Capacity) == 0) { return true; }
            uint pid; GetWindowThreadProcessId(h, out pid);
            RECT r; GetWindowRect(h, out r);
            list.Add(new object[] { sb.ToString(), h.ToInt64(), pid, r.Left, r.Top, r.Right - r.Left, r.Bottom - r.Top, IsWindowVisible(h), h == fg });
            return true;
        }, IntPtr.Zero);
        return list;
    }
}
'@
$names = @{}
Get-Process | ForEach-Object { $names[[uint32]$_.Id] = $_.ProcessName }
$out = @(foreach ($w in [HostctlWindows]::List()) {
    [pscustomobject]@{
        title = $w[0]; handle = $w[1]; pid = $w[2]; app = $names[[uint32]$w[2]]
        x = $w[3]; y = $w[4]; width = $w[5]; height = $w[6]
        visible = $w[7]; focused = $w[8]
    }
})
ConvertTo-Json -Compress -Depth 3 -InputObject $out
`

// bridgeWindow mirrors the JSON objects printed by listWindowsScript.
type bridgeWindow struct {
	Title   string `json:"title"`
	Handle  int64  `json:"handle"`
	PID     int    `json:"pid"`
	App     string `json:"app"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Visible bool   `json:"visible"`
	Focused bool   `json:"focused"`
}

// WindowLister implements platform.WindowLister through PowerShell.
type WindowLister struct {
	ps powerShell
}

// NewWindowLister creates a bridged window lister.
func NewWindowLister(runner Runner, powerShellExe string) *WindowLister {
	return &WindowLister{ps: powerShell{runner: runner, exe: powerShellExe}}
}

func (l *WindowLister) ListWindows(ctx context.Context, opts platform.ListOptions) ([]model.Window, error) {
	out, err := l.ps.run(ctx, listWindowsScript)
	if err != nil {
		return nil, err
	}
	windows, err := parseWindows(out)
	if err != nil {
		return nil, err
	}
	golog.Debugf("bridge listed %d windows", len(windows))
	return model.FilterWindows(windows, model.WindowFilter{
		Title:       opts.Title,
		App:         opts.App,
		PID:         opts.PID,
		VisibleOnly: opts.VisibleOnly,
	}), nil
}

func parseWindows(out []byte) ([]model.Window, error) {
	trimmed := strings.TrimSpace(string(out))
	// PowerShell 5 prints nothing for an empty pipeline.
	if trimmed == "" || trimmed == "null" {
		return []model.Window{}, nil
	}
	var raw []bridgeWindow
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, fmt.Errorf("parse window list from host: %w", err)
	}
	windows := make([]model.Window, 0, len(raw))
	for _, w := range raw {
		if w.Title == "" {
			continue
		}
		app := w.App
		if app != "" && !strings.HasSuffix(strings.ToLower(app), ".exe") {
			app += ".exe"
		}
		windows = append(windows, model.Window{
			Title:   w.Title,
			Handle:  w.Handle,
			PID:     w.PID,
			App:     app,
			Bounds:  [4]int{w.X, w.Y, w.Width, w.Height},
			Visible: w.Visible,
			Focused: w.Focused,
		})
	}
	return windows, nil
}
