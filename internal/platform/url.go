package platform

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL validates a URL before it is handed to the host's browser
// launcher. A missing scheme defaults to https. Only http and https are
// accepted: ShellExecute and "cmd /C start" dispatch any registered protocol
// handler, which would turn the launcher into a generic command runner.
func NormalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("url is empty")
	}
	if strings.ContainsAny(s, " \t\r\n\"") {
		return "", fmt.Errorf("invalid url %q: contains whitespace or quotes", raw)
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", fmt.Errorf("invalid url %q: scheme %q not allowed (use http or https)", raw, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid url %q: missing host", raw)
	}
	return u.String(), nil
}
