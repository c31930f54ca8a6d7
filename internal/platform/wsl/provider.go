package wsl

import (
	"github.com/mj1618/hostctl/internal/config"
	"github.com/mj1618/hostctl/internal/platform"
)

// NewProvider wires every bridged backend to runner using the executables
// and timeout from cfg.
func NewProvider(runner Runner, cfg *config.Config) *platform.Provider {
	if cfg == nil {
		cfg = config.Default()
	}
	runner = TimeoutRunner{Runner: runner, Timeout: cfg.BridgeTimeout}
	lister := NewWindowLister(runner, cfg.PowerShell)
	return &platform.Provider{
		Host:          platform.HostWSL,
		WindowLister:  lister,
		Screenshotter: NewScreenshotter(runner, cfg.PowerShell, lister),
		Inputter:      NewInputter(runner, cfg.PowerShell),
		Launcher:      NewLauncher(runner, cfg.CmdExe),
	}
}
