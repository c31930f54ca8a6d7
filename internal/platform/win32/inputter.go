//go:build windows

package win32

import (
	"context"
	"unsafe"

	"github.com/kataras/golog"
	"github.com/lxn/win"
	"github.com/mj1618/hostctl/internal/platform"
)

// Inputter implements platform.Inputter with SetCursorPos and SendInput.
type Inputter struct{}

// NewInputter creates a new Windows inputter.
func NewInputter() *Inputter {
	return &Inputter{}
}

// MoveMouse positions the cursor at absolute screen coordinates.
func (i *Inputter) MoveMouse(_ context.Context, x, y int) error {
	if !win.SetCursorPos(int32(x), int32(y)) {
		return platform.CallError("SetCursorPos", nil)
	}
	return nil
}

// Click moves the cursor to (X, Y) and sends Count down/up pairs for Button.
func (i *Inputter) Click(ctx context.Context, opts platform.ClickOptions) error {
	if err := i.MoveMouse(ctx, opts.X, opts.Y); err != nil {
		return err
	}

	inputs := mouseInputs(opts.Button, opts.Clicks())
	golog.Debugf("SendInput %s x%d at %d,%d", opts.Button, opts.Clicks(), opts.X, opts.Y)
	sent := win.SendInput(uint32(len(inputs)), unsafe.Pointer(&inputs[0]), int32(unsafe.Sizeof(inputs[0])))
	if int(sent) != len(inputs) {
		// SendInput is blocked by UIPI when the target runs at a higher
		// integrity level.
		return platform.CallError("SendInput", nil)
	}
	return nil
}

// mouseInputs builds clicks down/up pairs for button.
func mouseInputs(button platform.MouseButton, clicks int) []win.MOUSE_INPUT {
	down, up := buttonFlags(button)
	inputs := make([]win.MOUSE_INPUT, 0, 2*clicks)
	for n := 0; n < clicks; n++ {
		inputs = append(inputs,
			win.MOUSE_INPUT{Type: win.INPUT_MOUSE, Mi: win.MOUSEINPUT{DwFlags: down}},
			win.MOUSE_INPUT{Type: win.INPUT_MOUSE, Mi: win.MOUSEINPUT{DwFlags: up}},
		)
	}
	return inputs
}

func buttonFlags(b platform.MouseButton) (down, up uint32) {
	switch b {
	case platform.MouseRight:
		return win.MOUSEEVENTF_RIGHTDOWN, win.MOUSEEVENTF_RIGHTUP
	case platform.MouseMiddle:
		return win.MOUSEEVENTF_MIDDLEDOWN, win.MOUSEEVENTF_MIDDLEUP
	default:
		return win.MOUSEEVENTF_LEFTDOWN, win.MOUSEEVENTF_LEFTUP
	}
}
