package cmd

import (
	"errors"
	"os"
	"runtime"

	"github.com/mj1618/hostctl/internal/config"
	"github.com/mj1618/hostctl/internal/output"
	"github.com/mj1618/hostctl/internal/platform"
	"github.com/mj1618/hostctl/internal/version"
	"github.com/spf13/cobra"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Show the detected host and available operations",
	RunE:  runHost,
}

func init() {
	rootCmd.AddCommand(hostCmd)
}

func runHost(cmd *cobra.Command, args []string) error {
	result := output.HostResult{
		Host:      platform.DetectHost().String(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Kernel:    platform.KernelVersion(cmd.Context()),
		WSLDistro: os.Getenv(platform.WSLDistroEnvVar),
		EnvFile:   config.Current().EnvFile,
		Version:   version.Version,
	}

	provider, err := platform.NewProvider()
	if err != nil && !errors.Is(err, platform.ErrUnsupported) {
		return err
	}
	// A nil provider reports every operation as unavailable.
	result.Operations = provider.Capabilities()
	return output.Print(result)
}
