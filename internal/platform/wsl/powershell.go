package wsl

import (
	"context"
	"encoding/base64"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// encodeCommand produces the -EncodedCommand form of script: base64 of its
// UTF-16LE encoding. This sidesteps quoting across the WSL interop boundary.
func encodeCommand(script string) (string, error) {
	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().String(script)
	if err != nil {
		return "", fmt.Errorf("encode powershell script: %w", err)
	}
	return base64.StdEncoding.EncodeToString([]byte(utf16)), nil
}

// powerShell runs scripts on the Windows host.
type powerShell struct {
	runner Runner
	exe    string
}

func (p powerShell) run(ctx context.Context, script string) ([]byte, error) {
	encoded, err := encodeCommand(script)
	if err != nil {
		return nil, err
	}
	return p.runner.Output(ctx, p.exe,
		"-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass",
		"-EncodedCommand", encoded)
}

// dpiPrelude makes the PowerShell process DPI aware so that screen
// coordinates match what the native backend reports.
const dpiPrelude = `$ErrorActionPreference = 'Stop'
Add-Type -TypeDefinition @'
using System.Runtime.InteropServices;
public static class HostctlDpi {
    [DllImport("user32.dll")] public static extern bool SetProcessDPIAware();
}
'@
[void][HostctlDpi]::SetProcessDPIAware()
`
