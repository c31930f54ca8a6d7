package logging

import (
	"bytes"
	"testing"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
)

func TestValidLevel(t *testing.T) {
	for _, name := range []string{"debug", "INFO", " warn ", "error", "fatal", "disable"} {
		assert.True(t, ValidLevel(name), name)
	}
	assert.False(t, ValidLevel("verbose"))
	assert.False(t, ValidLevel(""))
}

func TestSetup_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)
	defer Setup(DefaultLevel, nil)

	golog.Debugf("clicked at %d,%d", 10, 20)
	assert.Contains(t, buf.String(), "clicked at 10,20")
	assert.Equal(t, golog.DebugLevel, golog.Default.Level)
}

func TestSetup_UnknownLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	Setup("chatty", &buf)
	defer Setup(DefaultLevel, nil)

	assert.Equal(t, golog.WarnLevel, golog.Default.Level)
	golog.Infof("hidden")
	assert.NotContains(t, buf.String(), "hidden")
}
