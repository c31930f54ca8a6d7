package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the backends for the current host. A nil field means the
// operation is not available on this host.
type Provider struct {
	Host          Host
	WindowLister  WindowLister
	Screenshotter Screenshotter
	Inputter      Inputter
	Launcher      Launcher
}

// ErrUnsupported is returned on hosts without a backend.
var ErrUnsupported = fmt.Errorf("hostctl is not supported on %s/%s; supported: windows, linux under WSL", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32 and internal/platform/wsl.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current host.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

// RequireWindowLister returns the lister or an unsupported-operation error.
func (p *Provider) RequireWindowLister() (WindowLister, error) {
	if p == nil || p.WindowLister == nil {
		return nil, unsupportedOp("window listing")
	}
	return p.WindowLister, nil
}

// RequireScreenshotter returns the screenshotter or an unsupported-operation error.
func (p *Provider) RequireScreenshotter() (Screenshotter, error) {
	if p == nil || p.Screenshotter == nil {
		return nil, unsupportedOp("screenshot")
	}
	return p.Screenshotter, nil
}

// RequireInputter returns the inputter or an unsupported-operation error.
func (p *Provider) RequireInputter() (Inputter, error) {
	if p == nil || p.Inputter == nil {
		return nil, unsupportedOp("mouse control")
	}
	return p.Inputter, nil
}

// RequireLauncher returns the launcher or an unsupported-operation error.
func (p *Provider) RequireLauncher() (Launcher, error) {
	if p == nil || p.Launcher == nil {
		return nil, unsupportedOp("browser launching")
	}
	return p.Launcher, nil
}

// Capabilities lists which operations this provider can perform.
func (p *Provider) Capabilities() map[string]bool {
	return map[string]bool{
		"list":       p != nil && p.WindowLister != nil,
		"screenshot": p != nil && p.Screenshotter != nil,
		"click":      p != nil && p.Inputter != nil,
		"open":       p != nil && p.Launcher != nil,
	}
}

func unsupportedOp(op string) error {
	return fmt.Errorf("%s not implemented on this host: %w", op, ErrUnsupported)
}
