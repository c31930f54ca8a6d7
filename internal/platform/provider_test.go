package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	// Temporarily clear the provider func to simulate an unsupported host
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	require.Error(t, err)
	assert.Equal(t, ErrUnsupported, err)
}

func TestNewProvider_UsesRegisteredFunc(t *testing.T) {
	orig := NewProviderFunc
	defer func() { NewProviderFunc = orig }()

	NewProviderFunc = func() (*Provider, error) {
		return &Provider{Host: HostWSL}, nil
	}
	p, err := NewProvider()
	require.NoError(t, err)
	assert.Equal(t, HostWSL, p.Host)
}

type fakeLauncher struct{}

func (fakeLauncher) OpenURL(context.Context, string) error { return nil }

func TestProvider_Require(t *testing.T) {
	p := &Provider{Launcher: fakeLauncher{}}

	l, err := p.RequireLauncher()
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = p.RequireScreenshotter()
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.Contains(t, err.Error(), "screenshot")

	_, err = p.RequireWindowLister()
	assert.True(t, errors.Is(err, ErrUnsupported))

	_, err = p.RequireInputter()
	assert.Contains(t, err.Error(), "mouse control")

	var nilProvider *Provider
	_, err = nilProvider.RequireLauncher()
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestProvider_Capabilities(t *testing.T) {
	p := &Provider{Launcher: fakeLauncher{}}
	caps := p.Capabilities()
	assert.True(t, caps["open"])
	assert.False(t, caps["screenshot"])
	assert.False(t, caps["list"])
	assert.False(t, caps["click"])
}
