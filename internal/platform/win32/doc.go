// Package win32 provides the native Windows backend: EnumWindows for window
// listing, GDI bit-block transfer for screen capture, SetCursorPos/SendInput
// for clicks and ShellExecute for launching the browser.
//
// The package compiles to an empty stub on other operating systems so that
// main can import it unconditionally.
package win32
