package output

// ScreenshotResult describes a screenshot written to a file.
type ScreenshotResult struct {
	OK     bool   `yaml:"ok"               json:"ok"`
	Action string `yaml:"action"           json:"action"`
	File   string `yaml:"file,omitempty"   json:"file,omitempty"`
	Format string `yaml:"format"           json:"format"`
	Width  int    `yaml:"width"            json:"width"`
	Height int    `yaml:"height"           json:"height"`
	Bytes  int    `yaml:"bytes"            json:"bytes"`
	Target string `yaml:"target"           json:"target"`
	// Origin is the screen coordinate of the image's top-left pixel before scaling.
	Origin [2]int  `yaml:"origin,flow"     json:"origin"`
	Scale  float64 `yaml:"scale"           json:"scale"`
}

// ClickResult is the output of a successful click.
type ClickResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	X      int    `yaml:"x"      json:"x"`
	Y      int    `yaml:"y"      json:"y"`
	Button string `yaml:"button" json:"button"`
	Count  int    `yaml:"count"  json:"count"`
}

// MoveResult is the output of a successful cursor move.
type MoveResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	X      int    `yaml:"x"      json:"x"`
	Y      int    `yaml:"y"      json:"y"`
}

// OpenResult is the output of a successful browser launch.
type OpenResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	URL    string `yaml:"url"    json:"url"`
}

// HostResult describes the detected host and which operations it supports.
type HostResult struct {
	Host       string          `yaml:"host"                     json:"host"`
	OS         string          `yaml:"os"                       json:"os"`
	Arch       string          `yaml:"arch"                     json:"arch"`
	Kernel     string          `yaml:"kernel,omitempty"         json:"kernel,omitempty"`
	WSLDistro  string          `yaml:"wsl_distro,omitempty"     json:"wsl_distro,omitempty"`
	Operations map[string]bool `yaml:"operations"               json:"operations"`
	EnvFile    string          `yaml:"env_file,omitempty"       json:"env_file,omitempty"`
	Version    string          `yaml:"version"                  json:"version"`
}
