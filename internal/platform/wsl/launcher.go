package wsl

import (
	"context"
	"strings"

	"github.com/kataras/golog"
)

// Launcher implements platform.Launcher with cmd.exe's start builtin.
type Launcher struct {
	runner Runner
	cmdExe string
}

// NewLauncher creates a bridged launcher. cmdExe is the WSL path to
// cmd.exe, e.g. /mnt/c/Windows/System32/cmd.exe.
func NewLauncher(runner Runner, cmdExe string) *Launcher {
	return &Launcher{runner: runner, cmdExe: cmdExe}
}

// OpenURL spawns the browser and returns without waiting for it. The URL
// is expected to be validated by the caller; metacharacters are escaped
// for cmd.exe regardless.
func (l *Launcher) OpenURL(_ context.Context, url string) error {
	golog.Debugf("bridge open %s", url)
	// The empty argument is start's window title; interop quotes it as "".
	return l.runner.Start(l.cmdExe, "/C", "start", "", cmdEscape(url))
}

var cmdEscaper = strings.NewReplacer(
	"^", "^^",
	"&", "^&",
	"|", "^|",
	"<", "^<",
	">", "^>",
	"(", "^(",
	")", "^)",
	"%", "^%",
)

// cmdEscape caret-escapes characters cmd.exe would treat as operators.
func cmdEscape(s string) string {
	return cmdEscaper.Replace(s)
}
