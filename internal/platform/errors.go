package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrWindowNotFound is returned when a window selector matches nothing.
var ErrWindowNotFound = errors.New("window not found")

// ErrNoImage is returned by capture modes that trigger a screenshot on the
// host without handing pixels back (e.g. the Print Screen key).
var ErrNoImage = errors.New("screenshot was taken on the host but no image was returned")

// OSCallError reports a failing native API call or bridged process.
type OSCallError struct {
	Op     string // API or command name, e.g. "BitBlt" or "powershell.exe"
	Err    error
	Output string // captured stderr/stdout of a bridged process, if any
}

func (e *OSCallError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed", e.Op)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		fmt.Fprintf(&b, " (%s)", out)
	}
	return b.String()
}

func (e *OSCallError) Unwrap() error { return e.Err }

// CallError wraps err as an OSCallError for op. A nil err yields a generic
// failure, which is how most Win32 BOOL-returning calls report errors.
func CallError(op string, err error) error {
	if err == nil {
		err = errors.New("call returned failure")
	}
	return &OSCallError{Op: op, Err: err}
}
