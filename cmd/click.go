package cmd

import (
	"fmt"

	"github.com/mj1618/hostctl/internal/output"
	"github.com/mj1618/hostctl/internal/platform"
	"github.com/spf13/cobra"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click at screen coordinates",
	Long: `Move the mouse to absolute screen coordinates and click. Coordinates are
physical pixels on the virtual screen; monitors left of or above the primary
display have negative coordinates. Use 'screenshot --grid' to find them.`,
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().Int("x", 0, "Absolute X screen coordinate")
	clickCmd.Flags().Int("y", 0, "Absolute Y screen coordinate")
	clickCmd.Flags().String("button", "left", "Mouse button: left, right, middle")
	clickCmd.Flags().Bool("double", false, "Double-click")
	_ = clickCmd.MarkFlagRequired("x")
	_ = clickCmd.MarkFlagRequired("y")
}

func runClick(cmd *cobra.Command, args []string) error {
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	buttonStr, _ := cmd.Flags().GetString("button")
	double, _ := cmd.Flags().GetBool("double")

	button, err := platform.ParseMouseButton(buttonStr)
	if err != nil {
		return err
	}
	opts := platform.ClickOptions{X: x, Y: y, Button: button, Count: 1}
	if double {
		opts.Count = 2
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	inputter, err := provider.RequireInputter()
	if err != nil {
		return err
	}
	if err := inputter.Click(cmd.Context(), opts); err != nil {
		return fmt.Errorf("click at (%d,%d): %w", x, y, err)
	}
	return output.Print(output.ClickResult{
		OK:     true,
		Action: "click",
		X:      x,
		Y:      y,
		Button: button.String(),
		Count:  opts.Clicks(),
	})
}
