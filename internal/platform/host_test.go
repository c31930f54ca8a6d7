package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeEnv(goos string, env map[string]string, kernel string, kernelErr error) hostEnv {
	return hostEnv{
		goos:   goos,
		getenv: func(k string) string { return env[k] },
		kernelVersion: func(context.Context) (string, error) {
			return kernel, kernelErr
		},
	}
}

func TestDetectHost(t *testing.T) {
	tests := []struct {
		name string
		env  hostEnv
		want Host
	}{
		{"windows", fakeEnv("windows", nil, "", nil), HostWindows},
		{"wsl by env", fakeEnv("linux", map[string]string{WSLDistroEnvVar: "Ubuntu"}, "6.8.0-generic", nil), HostWSL},
		{"wsl2 by kernel", fakeEnv("linux", nil, "5.15.167.4-microsoft-standard-WSL2", nil), HostWSL},
		{"wsl1 by kernel", fakeEnv("linux", nil, "4.4.0-19041-Microsoft", nil), HostWSL},
		{"plain linux", fakeEnv("linux", nil, "6.8.0-45-generic", nil), HostUnsupported},
		{"kernel lookup fails", fakeEnv("linux", nil, "", errors.New("no /proc")), HostUnsupported},
		{"darwin", fakeEnv("darwin", map[string]string{WSLDistroEnvVar: "x"}, "", nil), HostUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.env.detect(context.Background()))
		})
	}
}

func TestHostString(t *testing.T) {
	assert.Equal(t, "windows", HostWindows.String())
	assert.Equal(t, "wsl", HostWSL.String())
	assert.Equal(t, "unsupported", HostUnsupported.String())
}

func TestKernelVersion(t *testing.T) {
	orig := detector
	defer func() { detector = orig }()

	detector = fakeEnv("linux", nil, "5.15.0-microsoft", nil)
	assert.Equal(t, "5.15.0-microsoft", KernelVersion(context.Background()))
	assert.Equal(t, HostWSL, DetectHost())

	detector = fakeEnv("linux", nil, "", errors.New("boom"))
	assert.Equal(t, "", KernelVersion(context.Background()))
}
