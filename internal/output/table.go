package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mj1618/hostctl/internal/model"
)

// PrintWindowTable renders windows as a human-readable table.
func PrintWindowTable(w io.Writer, windows []model.Window) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Handle", "PID", "App", "Title", "Bounds", "Visible", "Focused"})
	for _, win := range windows {
		t.AppendRow(table.Row{
			win.HandleHex(),
			win.PID,
			win.App,
			truncate(win.Title, 60),
			fmt.Sprintf("%d,%d %dx%d", win.Bounds[0], win.Bounds[1], win.Bounds[2], win.Bounds[3]),
			yesNo(win.Visible),
			yesNo(win.Focused),
		})
	}
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d windows", len(windows))})
	t.Render()
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
