package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		EnvFileEnvVar, LogLevelEnvVar, PowerShellEnvVar, CmdExeEnvVar,
		ScreenshotFormatEnvVar, ScreenshotScaleEnvVar, ScreenshotQualityEnvVar,
		BridgeTimeoutEnvVar,
	} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, DefaultPowerShell, cfg.PowerShell)
	assert.Equal(t, DefaultCmdExe, cfg.CmdExe)
	assert.Equal(t, "png", cfg.ScreenshotFormat)
	assert.Equal(t, 1.0, cfg.ScreenshotScale)
	assert.Equal(t, 80, cfg.ScreenshotQuality)
	assert.Equal(t, 30*time.Second, cfg.BridgeTimeout)
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "HOSTCTL_LOG_LEVEL=DEBUG\n" +
		"HOSTCTL_POWERSHELL=/mnt/c/pwsh.exe\n" +
		"HOSTCTL_SCREENSHOT_FORMAT=JPG\n" +
		"HOSTCTL_SCREENSHOT_SCALE=0.5\n" +
		"HOSTCTL_SCREENSHOT_QUALITY=60\n" +
		"HOSTCTL_BRIDGE_TIMEOUT=5s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	// godotenv.Load sets real env vars; make sure they are cleaned up.
	for _, k := range []string{LogLevelEnvVar, PowerShellEnvVar, ScreenshotFormatEnvVar,
		ScreenshotScaleEnvVar, ScreenshotQualityEnvVar, BridgeTimeoutEnvVar} {
		k := k
		t.Cleanup(func() { os.Unsetenv(k) })
		os.Unsetenv(k)
	}

	cfg, err := Load(LoadOptions{EnvFile: path})
	require.NoError(t, err)
	assert.Equal(t, path, cfg.EnvFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/mnt/c/pwsh.exe", cfg.PowerShell)
	assert.Equal(t, "jpg", cfg.ScreenshotFormat)
	assert.Equal(t, 0.5, cfg.ScreenshotScale)
	assert.Equal(t, 60, cfg.ScreenshotQuality)
	assert.Equal(t, 5*time.Second, cfg.BridgeTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("HOSTCTL_CMD_EXE=/from/file\n"), 0644))
	t.Setenv(CmdExeEnvVar, "/from/env")

	cfg, err := Load(LoadOptions{EnvFile: path})
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.CmdExe)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(LoadOptions{EnvFile: filepath.Join(t.TempDir(), "nope.env")})
	assert.Error(t, err)
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{ScreenshotScaleEnvVar, "2"},
		{ScreenshotScaleEnvVar, "abc"},
		{ScreenshotQualityEnvVar, "0"},
		{ScreenshotQualityEnvVar, "101"},
		{BridgeTimeoutEnvVar, "-1s"},
		{BridgeTimeoutEnvVar, "soon"},
	}
	for _, tt := range tests {
		env := map[string]string{tt.key: tt.value}
		err := Default().applyEnv(func(k string) string { return env[k] })
		assert.Error(t, err, "%s=%s", tt.key, tt.value)
	}
}

func TestSetCurrent(t *testing.T) {
	orig := Current()
	defer Set(orig)

	cfg := Default()
	cfg.PowerShell = "pwsh.exe"
	Set(cfg)
	assert.Equal(t, "pwsh.exe", Current().PowerShell)

	Set(nil)
	assert.Equal(t, DefaultPowerShell, Current().PowerShell)
}
