//go:build linux

package wsl

import (
	"fmt"

	"github.com/mj1618/hostctl/internal/config"
	"github.com/mj1618/hostctl/internal/platform"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		if h := platform.DetectHost(); h != platform.HostWSL {
			return nil, fmt.Errorf("linux host is not running under WSL: %w", platform.ErrUnsupported)
		}
		return NewProvider(ExecRunner{}, config.Current()), nil
	}
}
