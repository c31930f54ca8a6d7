package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mj1618/hostctl/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// capture redirects Out and restores the output globals afterwards.
func capture(t *testing.T, format Format, pretty bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	origOut, origFormat, origPretty := Out, OutputFormat, PrettyOutput
	Out, OutputFormat, PrettyOutput = &buf, format, pretty
	t.Cleanup(func() {
		Out, OutputFormat, PrettyOutput = origOut, origFormat, origPretty
	})
	return &buf
}

func sampleWindows() []model.Window {
	return []model.Window{
		{Title: "Untitled - Notepad", Handle: 0x1001, PID: 100, App: "notepad.exe", Bounds: [4]int{10, 20, 800, 600}, Visible: true, Focused: true},
		{Title: "Inbox - Chrome", Handle: 0x2002, PID: 200, App: "chrome.exe", Visible: true},
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "json", "table"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestPrint_YAML(t *testing.T) {
	buf := capture(t, FormatYAML, false)
	require.NoError(t, Print(sampleWindows()))

	assert.Greater(t, strings.Count(buf.String(), "\n"), 1)
	var decoded []model.Window
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleWindows(), decoded)
}

func TestPrint_JSONCompact(t *testing.T) {
	buf := capture(t, FormatJSON, false)
	require.NoError(t, Print(ClickResult{OK: true, Action: "click", X: 1, Y: 2, Button: "left", Count: 1}))

	// Compact output should be a single line (plus newline from Encode)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	var decoded ClickResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.Y)
}

func TestPrint_JSONPretty(t *testing.T) {
	buf := capture(t, FormatJSON, true)
	require.NoError(t, Print(OpenResult{OK: true, Action: "open", URL: "https://example.com/?a=1&b=2"}))

	assert.Greater(t, strings.Count(buf.String(), "\n"), 1)
	assert.Contains(t, buf.String(), "a=1&b=2", "HTML escaping must be off")
}

func TestPrint_Table(t *testing.T) {
	buf := capture(t, FormatTable, false)
	require.NoError(t, Print(sampleWindows()))

	out := buf.String()
	assert.Contains(t, out, "HANDLE")
	assert.Contains(t, out, "0x1001")
	assert.Contains(t, out, "Untitled - Notepad")
	assert.Contains(t, out, "10,20 800x600")
	assert.Contains(t, strings.ToLower(out), "2 windows")
}

func TestPrint_TableFallsBackToYAML(t *testing.T) {
	buf := capture(t, FormatTable, false)
	require.NoError(t, Print(OpenResult{OK: true, Action: "open", URL: "https://example.com"}))
	assert.Contains(t, buf.String(), "url: https://example.com")
}

func TestPrint_MoveResult(t *testing.T) {
	buf := capture(t, FormatYAML, false)
	require.NoError(t, Print(MoveResult{OK: true, Action: "move", X: 640, Y: 360}))
	assert.Contains(t, buf.String(), "action: move")
	var decoded MoveResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, MoveResult{OK: true, Action: "move", X: 640, Y: 360}, decoded)
}

func TestPrint_UnknownFormat(t *testing.T) {
	capture(t, Format("xml"), false)
	assert.Error(t, Print(1))
}

func TestWindow_OmitEmpty(t *testing.T) {
	data, err := yaml.Marshal(model.Window{Title: "x", Handle: 1})
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &m))

	_, ok := m["pid"]
	assert.False(t, ok, "zero pid should be omitted")
	_, ok = m["focused"]
	assert.False(t, ok, "false focused should be omitted")
	_, ok = m["visible"]
	assert.True(t, ok, "visible should always be present")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
