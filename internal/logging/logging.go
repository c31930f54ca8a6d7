// Package logging configures the process-wide golog logger.
//
// Logs go to stderr by default so that stdout stays reserved for command
// output (YAML, JSON, base64 images, MCP stdio frames).
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/kataras/golog"
)

// TimeFormat is the timestamp layout used for every log line.
const TimeFormat = "2006/01/02 15:04:05"

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

var levels = map[string]bool{
	"disable": true,
	"fatal":   true,
	"error":   true,
	"warn":    true,
	"info":    true,
	"debug":   true,
}

// ValidLevel reports whether name is a level golog understands.
func ValidLevel(name string) bool {
	return levels[strings.ToLower(strings.TrimSpace(name))]
}

// Setup points the default logger at w (stderr when nil) and sets its level.
// Unknown level names fall back to DefaultLevel.
func Setup(level string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	level = strings.ToLower(strings.TrimSpace(level))
	if !ValidLevel(level) {
		level = DefaultLevel
	}
	golog.SetOutput(w)
	golog.SetTimeFormat(TimeFormat)
	golog.SetLevel(level)
}
