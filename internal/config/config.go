// Package config resolves hostctl settings from defaults, an optional .env
// file and the process environment, in that order of increasing priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvFileEnvVar           = "HOSTCTL_ENV_FILE"
	LogLevelEnvVar          = "HOSTCTL_LOG_LEVEL"
	PowerShellEnvVar        = "HOSTCTL_POWERSHELL"
	CmdExeEnvVar            = "HOSTCTL_CMD_EXE"
	ScreenshotFormatEnvVar  = "HOSTCTL_SCREENSHOT_FORMAT"
	ScreenshotScaleEnvVar   = "HOSTCTL_SCREENSHOT_SCALE"
	ScreenshotQualityEnvVar = "HOSTCTL_SCREENSHOT_QUALITY"
	BridgeTimeoutEnvVar     = "HOSTCTL_BRIDGE_TIMEOUT"

	DefaultPowerShell    = "powershell.exe"
	DefaultCmdExe        = "/mnt/c/Windows/System32/cmd.exe"
	DefaultFormat        = "png"
	DefaultScale         = 1.0
	DefaultQuality       = 80
	DefaultBridgeTimeout = 30 * time.Second
)

// Config holds resolved settings. Command-line flags override these.
type Config struct {
	EnvFile           string
	LogLevel          string
	PowerShell        string
	CmdExe            string
	ScreenshotFormat  string
	ScreenshotScale   float64
	ScreenshotQuality int
	BridgeTimeout     time.Duration
}

// LoadOptions tweaks where configuration is read from.
type LoadOptions struct {
	// EnvFile is an explicit .env path (--env-file). Missing explicit files
	// are an error; the implicit executable-dir file is optional.
	EnvFile string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:          "warn",
		PowerShell:        DefaultPowerShell,
		CmdExe:            DefaultCmdExe,
		ScreenshotFormat:  DefaultFormat,
		ScreenshotScale:   DefaultScale,
		ScreenshotQuality: DefaultQuality,
		BridgeTimeout:     DefaultBridgeTimeout,
	}
}

// Load reads the .env file (if any) into the environment without overriding
// variables that are already set, then builds a Config from the environment.
func Load(opts LoadOptions) (*Config, error) {
	envPath, explicit := resolveEnvPath(opts.EnvFile)
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			if explicit {
				return nil, fmt.Errorf("load env file %s: %w", envPath, err)
			}
			envPath = ""
		}
	}

	cfg := Default()
	cfg.EnvFile = envPath
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(LogLevelEnvVar)); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(PowerShellEnvVar)); v != "" {
		c.PowerShell = v
	}
	if v := strings.TrimSpace(getenv(CmdExeEnvVar)); v != "" {
		c.CmdExe = v
	}
	if v := strings.TrimSpace(getenv(ScreenshotFormatEnvVar)); v != "" {
		c.ScreenshotFormat = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(ScreenshotScaleEnvVar)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 || f > 1 {
			return fmt.Errorf("%s: expected a number in (0,1], got %q", ScreenshotScaleEnvVar, v)
		}
		c.ScreenshotScale = f
	}
	if v := strings.TrimSpace(getenv(ScreenshotQualityEnvVar)); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q < 1 || q > 100 {
			return fmt.Errorf("%s: expected an integer 1-100, got %q", ScreenshotQualityEnvVar, v)
		}
		c.ScreenshotQuality = q
	}
	if v := strings.TrimSpace(getenv(BridgeTimeoutEnvVar)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("%s: expected a positive duration, got %q", BridgeTimeoutEnvVar, v)
		}
		c.BridgeTimeout = d
	}
	return nil
}

// resolveEnvPath picks the .env file: the explicit flag, then
// HOSTCTL_ENV_FILE, then .env next to the executable.
func resolveEnvPath(flagPath string) (string, bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if p := strings.TrimSpace(os.Getenv(EnvFileEnvVar)); p != "" {
		return p, true
	}
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}
	p := filepath.Join(filepath.Dir(exe), ".env")
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, false
}

var current = Default()

// Current returns the configuration installed by Set, or the defaults.
func Current() *Config {
	return current
}

// Set installs cfg as the process-wide configuration. Backends read it when
// they are constructed.
func Set(cfg *Config) {
	if cfg == nil {
		cfg = Default()
	}
	current = cfg
}
