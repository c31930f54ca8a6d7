package platform

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Host identifies the kind of machine hostctl is running on.
type Host int

const (
	HostUnsupported Host = iota
	HostWindows
	HostWSL
)

func (h Host) String() string {
	switch h {
	case HostWindows:
		return "windows"
	case HostWSL:
		return "wsl"
	default:
		return "unsupported"
	}
}

// WSLDistroEnvVar is set by WSL in every Linux process it starts.
const WSLDistroEnvVar = "WSL_DISTRO_NAME"

// hostEnv gathers the inputs of host detection; tests replace it.
type hostEnv struct {
	goos          string
	getenv        func(string) string
	kernelVersion func(context.Context) (string, error)
}

var detector = hostEnv{
	goos:          runtime.GOOS,
	getenv:        os.Getenv,
	kernelVersion: host.KernelVersionWithContext,
}

// DetectHost classifies the current machine.
func DetectHost() Host {
	return detector.detect(context.Background())
}

func (e hostEnv) detect(ctx context.Context) Host {
	switch e.goos {
	case "windows":
		return HostWindows
	case "linux":
		if e.getenv(WSLDistroEnvVar) != "" {
			return HostWSL
		}
		if kv, err := e.kernelVersion(ctx); err == nil && isWSLKernel(kv) {
			return HostWSL
		}
	}
	return HostUnsupported
}

// KernelVersion reports the running kernel version, or "" if unknown.
func KernelVersion(ctx context.Context) string {
	kv, err := detector.kernelVersion(ctx)
	if err != nil {
		return ""
	}
	return kv
}

func isWSLKernel(version string) bool {
	v := strings.ToLower(version)
	return strings.Contains(v, "microsoft") || strings.Contains(v, "wsl")
}
