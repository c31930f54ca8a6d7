package cmd

import (
	"github.com/mj1618/hostctl/internal/output"
	"github.com/mj1618/hostctl/internal/platform"
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move the mouse cursor without clicking",
	Long:  "Move the mouse to absolute screen coordinates, e.g. to trigger hover effects or tooltips.",
	RunE:  runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().Int("x", 0, "Absolute X screen coordinate")
	moveCmd.Flags().Int("y", 0, "Absolute Y screen coordinate")
	_ = moveCmd.MarkFlagRequired("x")
	_ = moveCmd.MarkFlagRequired("y")
}

func runMove(cmd *cobra.Command, args []string) error {
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	inputter, err := provider.RequireInputter()
	if err != nil {
		return err
	}
	if err := inputter.MoveMouse(cmd.Context(), x, y); err != nil {
		return err
	}
	return output.Print(output.MoveResult{OK: true, Action: "move", X: x, Y: y})
}
