package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/kataras/golog"
	"github.com/mj1618/hostctl/internal/config"
	"github.com/mj1618/hostctl/internal/logging"
	"github.com/mj1618/hostctl/internal/output"
	"github.com/mj1618/hostctl/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hostctl",
	Short: "Screenshots, window listing, clicks and browser launching on a Windows host",
	Long: `hostctl automates a Windows desktop: capture screenshots, enumerate windows,
click at screen coordinates, and open URLs in the default browser.

It runs natively on Windows and from Linux under WSL, where every operation is
bridged to the Windows side through powershell.exe or cmd.exe.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json, table (default: json when piped, yaml otherwise)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: disable, fatal, error, warn, info, debug")
	rootCmd.PersistentFlags().String("env-file", "", "Load settings from this .env file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		envFile, _ := rootCmd.PersistentFlags().GetString("env-file")
		cfg, err := config.Load(config.LoadOptions{EnvFile: envFile})
		if err != nil {
			return err
		}
		if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
			if !logging.ValidLevel(level) {
				return fmt.Errorf("unsupported log level: %s", level)
			}
			cfg.LogLevel = level
		}
		logging.Setup(cfg.LogLevel, nil)
		config.Set(cfg)
		if cfg.EnvFile != "" {
			golog.Debugf("loaded settings from %s", cfg.EnvFile)
		}

		// Use the root persistent flag directly to avoid conflicts with
		// screenshot's own --format png/jpg.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		if format == "" {
			if output.IsOutputPiped() {
				format = string(output.FormatJSON)
			} else {
				format = string(output.FormatYAML)
			}
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}
