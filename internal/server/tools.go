package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func (s *Server) tools() []mcpserver.ServerTool {
	return []mcpserver.ServerTool{
		{
			Tool: mcp.NewTool("list_windows",
				mcp.WithDescription("List top-level windows on the host with title, handle, PID, app, bounds and focus state"),
				mcp.WithString("title", mcp.Description("Filter by title substring (case-insensitive)")),
				mcp.WithString("app", mcp.Description("Filter by process name, e.g. 'notepad' or 'notepad.exe'")),
				mcp.WithNumber("pid", mcp.Description("Filter by process ID")),
				mcp.WithBoolean("all", mcp.Description("Include hidden windows")),
			),
			Handler: s.handleListWindows,
		},
		{
			Tool: mcp.NewTool("screenshot",
				mcp.WithDescription("Capture the screen, one display, a window, or a region and return it as an image"),
				mcp.WithString("window", mcp.Description("Capture window by title substring")),
				mcp.WithNumber("window-id", mcp.Description("Capture window by handle")),
				mcp.WithNumber("display", mcp.Description("Capture a single display (1-based)")),
				mcp.WithString("region", mcp.Description("Capture screen rectangle 'x,y,w,h'")),
				mcp.WithString("format", mcp.Description("Image format: png, jpg")),
				mcp.WithNumber("quality", mcp.Description("JPEG quality 1-100")),
				mcp.WithNumber("scale", mcp.Description("Scale factor 0.05-1.0")),
				mcp.WithNumber("grid", mcp.Description("Overlay a coordinate grid every N screen pixels (0 = off)")),
				mcp.WithBoolean("print-screen", mcp.Description("WSL only: press the Print Screen key on the host instead of returning an image")),
			),
			Handler: s.handleScreenshot,
		},
		{
			Tool: mcp.NewTool("click",
				mcp.WithDescription("Move the mouse to absolute screen coordinates and click"),
				mcp.WithNumber("x", mcp.Description("X screen coordinate"), mcp.Required()),
				mcp.WithNumber("y", mcp.Description("Y screen coordinate"), mcp.Required()),
				mcp.WithString("button", mcp.Description("Mouse button: left, right, middle")),
				mcp.WithBoolean("double", mcp.Description("Double-click")),
			),
			Handler: s.handleClick,
		},
		{
			Tool: mcp.NewTool("open_browser",
				mcp.WithDescription("Open an http or https URL in the host's default browser"),
				mcp.WithString("url", mcp.Description("URL to open; https:// is assumed when no scheme is given"), mcp.Required()),
			),
			Handler: s.handleOpenBrowser,
		},
	}
}
