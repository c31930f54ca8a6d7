package platform

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBBox_Valid(t *testing.T) {
	b, err := ParseBBox("10,20,300,400")
	require.NoError(t, err)
	assert.Equal(t, Bounds{X: 10, Y: 20, Width: 300, Height: 400}, *b)
}

func TestParseBBox_WithSpaces(t *testing.T) {
	b, err := ParseBBox("10, 20, 300, 400")
	require.NoError(t, err)
	assert.Equal(t, Bounds{X: 10, Y: 20, Width: 300, Height: 400}, *b)
}

func TestParseBBox_NegativeOrigin(t *testing.T) {
	// Monitors left of the primary display have negative coordinates.
	b, err := ParseBBox("-1920,0,1920,1080")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(-1920, 0, 0, 1080), b.Rect())
}

func TestParseBBox_Invalid(t *testing.T) {
	tests := []string{
		"",
		"10,20,300",
		"10,20,300,400,500",
		"a,b,c,d",
		"10,20,abc,400",
		"10,20,0,400",
		"10,20,300,-1",
	}
	for _, s := range tests {
		_, err := ParseBBox(s)
		assert.Error(t, err, "ParseBBox(%q) should fail", s)
	}
}

func TestParseMouseButton_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  MouseButton
	}{
		{"", MouseLeft},
		{"left", MouseLeft},
		{"LEFT", MouseLeft},
		{"right", MouseRight},
		{"Right", MouseRight},
		{"middle", MouseMiddle},
	}
	for _, tt := range tests {
		got, err := ParseMouseButton(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseMouseButton_Invalid(t *testing.T) {
	_, err := ParseMouseButton("invalid")
	assert.Error(t, err)
}

func TestMouseButton_String(t *testing.T) {
	assert.Equal(t, "left", MouseLeft.String())
	assert.Equal(t, "right", MouseRight.String())
	assert.Equal(t, "middle", MouseMiddle.String())
}

func TestBoundsFromRect(t *testing.T) {
	b := BoundsFromRect(image.Rect(5, 6, 105, 56))
	assert.Equal(t, Bounds{X: 5, Y: 6, Width: 100, Height: 50}, b)
	assert.False(t, b.Empty())
	assert.True(t, Bounds{Width: 10}.Empty())
}

func TestScreenshotOptions_Validate(t *testing.T) {
	region := &Bounds{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name    string
		opts    ScreenshotOptions
		wantErr bool
	}{
		{"whole screen", ScreenshotOptions{}, false},
		{"window title", ScreenshotOptions{Window: "Notepad"}, false},
		{"window title and handle", ScreenshotOptions{Window: "Notepad", WindowID: 42}, false},
		{"display", ScreenshotOptions{Display: 2}, false},
		{"region", ScreenshotOptions{Region: region}, false},
		{"window and region", ScreenshotOptions{Window: "x", Region: region}, true},
		{"display and handle", ScreenshotOptions{Display: 1, WindowID: 42}, true},
		{"negative display", ScreenshotOptions{Display: -1}, true},
		{"empty region", ScreenshotOptions{Region: &Bounds{Width: 0, Height: 5}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScreenshotOptions_Target(t *testing.T) {
	assert.Equal(t, "screen", ScreenshotOptions{}.Target())
	assert.Equal(t, "window 0x2A", ScreenshotOptions{WindowID: 42}.Target())
	assert.Equal(t, `window "Notepad"`, ScreenshotOptions{Window: "Notepad"}.Target())
	assert.Equal(t, "display 2", ScreenshotOptions{Display: 2}.Target())
	assert.Equal(t, "region 1,2,3,4", ScreenshotOptions{Region: &Bounds{1, 2, 3, 4}}.Target())
}

func TestClickOptions_Clicks(t *testing.T) {
	assert.Equal(t, 1, ClickOptions{}.Clicks())
	assert.Equal(t, 1, ClickOptions{Count: -3}.Clicks())
	assert.Equal(t, 2, ClickOptions{Count: 2}.Clicks())
}
