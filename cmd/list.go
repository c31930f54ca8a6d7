package cmd

import (
	"github.com/mj1618/hostctl/internal/model"
	"github.com/mj1618/hostctl/internal/output"
	"github.com/mj1618/hostctl/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List open windows",
	Long: `List titled top-level windows with their handle, PID, app name, bounds, and
visibility. Hidden windows are skipped unless --all is given. The focused
window is listed first.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("title", "", "Filter windows by title substring")
	listCmd.Flags().Int("pid", 0, "Filter windows by PID")
	listCmd.Flags().String("app", "", "Filter windows by app name, e.g. notepad.exe")
	listCmd.Flags().Bool("all", false, "Include hidden windows")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	lister, err := provider.RequireWindowLister()
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	pid, _ := cmd.Flags().GetInt("pid")
	appName, _ := cmd.Flags().GetString("app")
	all, _ := cmd.Flags().GetBool("all")

	windows, err := lister.ListWindows(cmd.Context(), platform.ListOptions{
		Title:       title,
		PID:         pid,
		App:         appName,
		VisibleOnly: !all,
	})
	if err != nil {
		return err
	}
	if windows == nil {
		windows = []model.Window{}
	}
	model.SortWindows(windows)
	return output.Print(windows)
}
