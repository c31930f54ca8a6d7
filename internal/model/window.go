package model

import (
	"sort"
	"strconv"
	"strings"
)

// Window is a top-level desktop window. Handle is the OS-assigned window
// handle (HWND on Windows).
type Window struct {
	Title   string `yaml:"title"             json:"title"`
	Handle  int64  `yaml:"handle"            json:"handle"`
	PID     int    `yaml:"pid,omitempty"     json:"pid,omitempty"`
	App     string `yaml:"app,omitempty"     json:"app,omitempty"`
	Bounds  [4]int `yaml:"bounds,flow"       json:"bounds"`
	Visible bool   `yaml:"visible"           json:"visible"`
	Focused bool   `yaml:"focused,omitempty" json:"focused,omitempty"`
}

// HandleHex formats the handle the way Windows tools print an HWND.
func (w Window) HandleHex() string {
	return "0x" + strings.ToUpper(strconv.FormatInt(w.Handle, 16))
}

// WindowFilter selects windows. Zero values match everything.
type WindowFilter struct {
	Title       string // case-insensitive substring of the title
	App         string // case-insensitive app (process) name, ".exe" optional
	PID         int
	VisibleOnly bool
}

// FilterWindows returns the windows matching f, preserving order.
func FilterWindows(windows []Window, f WindowFilter) []Window {
	title := strings.ToLower(f.Title)
	app := normalizeApp(f.App)

	result := make([]Window, 0, len(windows))
	for _, w := range windows {
		if f.VisibleOnly && !w.Visible {
			continue
		}
		if f.PID != 0 && w.PID != f.PID {
			continue
		}
		if app != "" && normalizeApp(w.App) != app {
			continue
		}
		if title != "" && !strings.Contains(strings.ToLower(w.Title), title) {
			continue
		}
		result = append(result, w)
	}
	return result
}

// FindWindow returns the first window whose handle equals handle (when
// non-zero) or whose title contains title (case-insensitive).
func FindWindow(windows []Window, title string, handle int64) (Window, bool) {
	if handle != 0 {
		for _, w := range windows {
			if w.Handle == handle {
				return w, true
			}
		}
		return Window{}, false
	}
	if title == "" {
		return Window{}, false
	}
	// Prefer an exact title, then the focused match, then the first match.
	matches := FilterWindows(windows, WindowFilter{Title: title})
	for _, w := range matches {
		if strings.EqualFold(w.Title, title) {
			return w, true
		}
	}
	for _, w := range matches {
		if w.Focused {
			return w, true
		}
	}
	if len(matches) > 0 {
		return matches[0], true
	}
	return Window{}, false
}

// SortWindows orders windows focused first, then visible, then by title.
func SortWindows(windows []Window) {
	sort.SliceStable(windows, func(i, j int) bool {
		a, b := windows[i], windows[j]
		if a.Focused != b.Focused {
			return a.Focused
		}
		if a.Visible != b.Visible {
			return a.Visible
		}
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	})
}

func normalizeApp(s string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ".exe")
}
