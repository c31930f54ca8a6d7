package cmd

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mj1618/hostctl/internal/capture"
	"github.com/mj1618/hostctl/internal/config"
	"github.com/mj1618/hostctl/internal/imaging"
	"github.com/mj1618/hostctl/internal/output"
	"github.com/mj1618/hostctl/internal/platform"
	"github.com/spf13/cobra"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a screenshot",
	Long: `Capture the whole virtual screen (every monitor), a single display, a window,
or a screen region.

Without --output the encoded image is written to stdout as base64. With
--output it is written to the file and a summary is printed. --grid overlays
screen coordinates so that a point in the picture can be passed to click.`,
	RunE: runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	addScreenshotFlags(screenshotCmd)
}

func addScreenshotFlags(cmd *cobra.Command) {
	cmd.Flags().String("window", "", "Capture window by title substring")
	cmd.Flags().Int64("window-id", 0, "Capture window by handle")
	cmd.Flags().Int("display", 0, "Capture a single display, 1-based (0 = all displays)")
	cmd.Flags().String("region", "", "Capture a screen rectangle x,y,w,h")
	cmd.Flags().String("output", "", "Output file path (default: stdout as base64)")
	cmd.Flags().String("format", "", "Image format: png, jpg (default from HOSTCTL_SCREENSHOT_FORMAT or png)")
	cmd.Flags().Int("quality", config.DefaultQuality, "JPEG quality 1-100 (overrides HOSTCTL_SCREENSHOT_QUALITY)")
	cmd.Flags().Float64("scale", config.DefaultScale, "Scale factor 0.05-1.0 (overrides HOSTCTL_SCREENSHOT_SCALE)")
	cmd.Flags().Int("grid", 0, "Overlay a coordinate grid every N screen pixels")
	cmd.Flags().Bool("print-screen", false, "WSL only: press the Print Screen key on the host instead of returning an image")
}

// defaultCaptureRequest returns the encoding settings from cfg.
func defaultCaptureRequest(cfg *config.Config) (capture.Request, error) {
	f, err := imaging.ParseFormat(cfg.ScreenshotFormat)
	if err != nil {
		return capture.Request{}, fmt.Errorf("%s: %w", config.ScreenshotFormatEnvVar, err)
	}
	return capture.Request{Format: f, Quality: cfg.ScreenshotQuality, Scale: cfg.ScreenshotScale}, nil
}

// screenshotRequest builds a capture request from flags, falling back to the
// configured defaults for anything not given.
func screenshotRequest(cmd *cobra.Command, cfg *config.Config) (capture.Request, error) {
	req, err := defaultCaptureRequest(cfg)
	if err != nil {
		return req, err
	}
	flags := cmd.Flags()
	req.Window, _ = flags.GetString("window")
	req.WindowID, _ = flags.GetInt64("window-id")
	req.Display, _ = flags.GetInt("display")
	req.PrintScreenKey, _ = flags.GetBool("print-screen")
	req.Grid, _ = flags.GetInt("grid")

	if region, _ := flags.GetString("region"); region != "" {
		b, err := platform.ParseBBox(region)
		if err != nil {
			return req, err
		}
		req.Region = b
	}
	if format, _ := flags.GetString("format"); format != "" {
		if req.Format, err = imaging.ParseFormat(format); err != nil {
			return req, err
		}
	}
	if flags.Changed("quality") {
		req.Quality, _ = flags.GetInt("quality")
		if req.Quality < 1 || req.Quality > 100 {
			return req, fmt.Errorf("quality must be between 1 and 100")
		}
	}
	if flags.Changed("scale") {
		req.Scale, _ = flags.GetFloat64("scale")
		if req.Scale <= 0 || req.Scale > 1 {
			return req, fmt.Errorf("scale must be in (0,1]")
		}
	}
	return req, nil
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	req, err := screenshotRequest(cmd, config.Current())
	if err != nil {
		return err
	}
	outPath, _ := cmd.Flags().GetString("output")

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	screenshotter, err := provider.RequireScreenshotter()
	if err != nil {
		return err
	}

	shot, err := capture.Take(cmd.Context(), screenshotter, req)
	if req.PrintScreenKey && errors.Is(err, platform.ErrNoImage) {
		return output.Print(output.ScreenshotResult{OK: true, Action: "print-screen", Target: req.Target()})
	}
	if err != nil {
		return err
	}

	if outPath == "" {
		// Default: write to stdout as base64 for easy agent consumption
		encoder := base64.NewEncoder(base64.StdEncoding, output.Out)
		if _, err := encoder.Write(shot.Data); err != nil {
			return err
		}
		if err := encoder.Close(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(output.Out)
		return err
	}

	if filepath.Ext(outPath) == "" {
		outPath += shot.Format.Ext()
	}
	if err := os.WriteFile(outPath, shot.Data, 0o644); err != nil {
		return err
	}
	return output.Print(output.ScreenshotResult{
		OK:     true,
		Action: "screenshot",
		File:   outPath,
		Format: string(shot.Format),
		Width:  shot.Width,
		Height: shot.Height,
		Bytes:  len(shot.Data),
		Target: shot.Target,
		Origin: [2]int{shot.Origin.X, shot.Origin.Y},
		Scale:  shot.Scale,
	})
}
