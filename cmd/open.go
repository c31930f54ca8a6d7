package cmd

import (
	"fmt"

	"github.com/mj1618/hostctl/internal/output"
	"github.com/mj1618/hostctl/internal/platform"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open URL",
	Short: "Open a URL in the default browser",
	Long: `Open an http or https URL in the host's default browser. A URL without a
scheme gets https://. Other schemes are rejected because the Windows shell
would hand them to arbitrary protocol handlers.

Examples:
  hostctl open https://example.com
  hostctl open example.com/docs`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	url, err := platform.NormalizeURL(args[0])
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	launcher, err := provider.RequireLauncher()
	if err != nil {
		return err
	}
	if err := launcher.OpenURL(cmd.Context(), url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return output.Print(output.OpenResult{OK: true, Action: "open", URL: url})
}
