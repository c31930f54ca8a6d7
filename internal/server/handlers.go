package server

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/kataras/golog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/hostctl/internal/capture"
	"github.com/mj1618/hostctl/internal/imaging"
	"github.com/mj1618/hostctl/internal/model"
	"github.com/mj1618/hostctl/internal/output"
	"github.com/mj1618/hostctl/internal/platform"
	"gopkg.in/yaml.v3"
)

// toText serializes a result to YAML for an MCP response.
func toText(v any) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func toolError(err error) *mcp.CallToolResult {
	golog.Debugf("tool error: %v", err)
	return mcp.NewToolResultError(err.Error())
}

func (s *Server) handleListWindows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	pid, err := IntArg(params, "pid", 0)
	if err != nil {
		return toolError(err), nil
	}
	all, err := BoolArg(params, "all", false)
	if err != nil {
		return toolError(err), nil
	}
	opts := platform.ListOptions{
		Title:       StringParam(params, "title", ""),
		App:         StringParam(params, "app", ""),
		PID:         pid,
		VisibleOnly: !all,
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	lister, err := s.provider.RequireWindowLister()
	if err != nil {
		return toolError(err), nil
	}
	windows, err := s.cache.ListWindows(ctx, lister, opts)
	if err != nil {
		return toolError(err), nil
	}
	// Sort a copy; the cache shares its slice between calls.
	sorted := append([]model.Window{}, windows...)
	model.SortWindows(sorted)
	return mcp.NewToolResultText(toText(sorted)), nil
}

func (s *Server) screenshotRequest(params map[string]any) (capture.Request, error) {
	req := s.defaults
	var err error
	req.ScreenshotOptions = platform.ScreenshotOptions{
		Window: StringParam(params, "window", ""),
	}
	if req.WindowID, err = Int64Arg(params, "window-id", 0); err != nil {
		return req, err
	}
	if req.Display, err = IntArg(params, "display", 0); err != nil {
		return req, err
	}
	if req.PrintScreenKey, err = BoolArg(params, "print-screen", false); err != nil {
		return req, err
	}
	if region := StringParam(params, "region", ""); region != "" {
		b, err := platform.ParseBBox(region)
		if err != nil {
			return req, err
		}
		req.Region = b
	}
	if f := StringParam(params, "format", ""); f != "" {
		format, err := imaging.ParseFormat(f)
		if err != nil {
			return req, err
		}
		req.Format = format
	}
	if req.Quality, err = IntArg(params, "quality", req.Quality); err != nil {
		return req, err
	}
	if req.Quality < 0 || req.Quality > 100 {
		return req, fmt.Errorf("quality: expected 1-100, got %d", req.Quality)
	}
	if req.Scale, err = FloatArg(params, "scale", req.Scale); err != nil {
		return req, err
	}
	if req.Scale < 0 || req.Scale > 1 {
		return req, fmt.Errorf("scale: expected a number in (0,1], got %v", req.Scale)
	}
	if req.Grid, err = IntArg(params, "grid", req.Grid); err != nil {
		return req, err
	}
	return req, nil
}

func (s *Server) handleScreenshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := s.screenshotRequest(request.GetArguments())
	if err != nil {
		return toolError(err), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	screenshotter, err := s.provider.RequireScreenshotter()
	if err != nil {
		return toolError(err), nil
	}
	shot, err := capture.Take(ctx, screenshotter, req)
	if req.PrintScreenKey && errors.Is(err, platform.ErrNoImage) {
		return mcp.NewToolResultText(toText(output.ScreenshotResult{
			OK:     true,
			Action: "print-screen",
			Target: req.Target(),
		})), nil
	}
	if err != nil {
		return toolError(err), nil
	}

	meta := output.ScreenshotResult{
		OK:     true,
		Action: "screenshot",
		Format: string(shot.Format),
		Width:  shot.Width,
		Height: shot.Height,
		Bytes:  len(shot.Data),
		Target: shot.Target,
		Origin: [2]int{shot.Origin.X, shot.Origin.Y},
		Scale:  shot.Scale,
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(shot.Data),
				MIMEType: shot.Format.MIMEType(),
			},
			mcp.TextContent{
				Type: "text",
				Text: toText(meta),
			},
		},
	}, nil
}

func (s *Server) handleClick(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	if _, ok := params["x"]; !ok {
		return mcp.NewToolResultError("x is required"), nil
	}
	if _, ok := params["y"]; !ok {
		return mcp.NewToolResultError("y is required"), nil
	}
	x, err := IntArg(params, "x", 0)
	if err != nil {
		return toolError(err), nil
	}
	y, err := IntArg(params, "y", 0)
	if err != nil {
		return toolError(err), nil
	}
	button, err := platform.ParseMouseButton(StringParam(params, "button", "left"))
	if err != nil {
		return toolError(err), nil
	}
	double, err := BoolArg(params, "double", false)
	if err != nil {
		return toolError(err), nil
	}
	opts := platform.ClickOptions{X: x, Y: y, Button: button, Count: 1}
	if double {
		opts.Count = 2
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	inputter, err := s.provider.RequireInputter()
	if err != nil {
		return toolError(err), nil
	}
	if err := inputter.Click(ctx, opts); err != nil {
		return toolError(err), nil
	}
	s.cache.InvalidateAll()

	return mcp.NewToolResultText(toText(output.ClickResult{
		OK:     true,
		Action: "click",
		X:      opts.X,
		Y:      opts.Y,
		Button: opts.Button.String(),
		Count:  opts.Clicks(),
	})), nil
}

func (s *Server) handleOpenBrowser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := StringParam(request.GetArguments(), "url", "")
	url, err := platform.NormalizeURL(raw)
	if err != nil {
		return toolError(err), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	launcher, err := s.provider.RequireLauncher()
	if err != nil {
		return toolError(err), nil
	}
	if err := launcher.OpenURL(ctx, url); err != nil {
		return toolError(err), nil
	}
	s.cache.InvalidateAll()

	return mcp.NewToolResultText(toText(output.OpenResult{OK: true, Action: "open", URL: url})), nil
}
