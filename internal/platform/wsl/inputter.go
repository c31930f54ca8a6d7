package wsl

import (
	"context"
	"fmt"

	"github.com/kataras/golog"
	"github.com/mj1618/hostctl/internal/platform"
)

const mouseTypeDef = `Add-Type -TypeDefinition @'
using System.Runtime.InteropServices;
public static class HostctlMouse {
    [DllImport("user32.dll")] public static extern bool SetCursorPos(int x, int y);
    [DllImport("user32.dll")] public static extern void mouse_event(uint flags, uint dx, uint dy, uint data, System.UIntPtr extra);
}
'@
`

// mouse_event flags for down/up per button.
var mouseEventFlags = map[platform.MouseButton][2]uint32{
	platform.MouseLeft:   {0x0002, 0x0004},
	platform.MouseRight:  {0x0008, 0x0010},
	platform.MouseMiddle: {0x0020, 0x0040},
}

// Inputter implements platform.Inputter with user32 calls made from
// PowerShell.
type Inputter struct {
	ps powerShell
}

// NewInputter creates a bridged inputter.
func NewInputter(runner Runner, powerShellExe string) *Inputter {
	return &Inputter{ps: powerShell{runner: runner, exe: powerShellExe}}
}

func (in *Inputter) Click(ctx context.Context, opts platform.ClickOptions) error {
	golog.Debugf("bridge click %s at (%d,%d) x%d", opts.Button, opts.X, opts.Y, opts.Clicks())
	_, err := in.ps.run(ctx, clickScript(opts))
	return err
}

func (in *Inputter) MoveMouse(ctx context.Context, x, y int) error {
	_, err := in.ps.run(ctx, moveScript(x, y))
	return err
}

func moveScript(x, y int) string {
	return dpiPrelude + mouseTypeDef +
		fmt.Sprintf("if (-not [HostctlMouse]::SetCursorPos(%d, %d)) { throw 'SetCursorPos failed' }\n", x, y)
}

func clickScript(opts platform.ClickOptions) string {
	flags, ok := mouseEventFlags[opts.Button]
	if !ok {
		flags = mouseEventFlags[platform.MouseLeft]
	}
	script := moveScript(opts.X, opts.Y)
	for i := 0; i < opts.Clicks(); i++ {
		script += fmt.Sprintf("[HostctlMouse]::mouse_event(%d, 0, 0, 0, [System.UIntPtr]::Zero)\n", flags[0])
		script += fmt.Sprintf("[HostctlMouse]::mouse_event(%d, 0, 0, 0, [System.UIntPtr]::Zero)\n", flags[1])
	}
	return script
}
