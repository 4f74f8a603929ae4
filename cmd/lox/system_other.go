//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd
// +build !linux,!darwin,!dragonfly,!freebsd,!netbsd,!openbsd

package main

import "os"

// isTerminal reports whether f is a character device, which is the closest
// available approximation of a terminal.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// platformVersion describes the running kernel for -version.
func platformVersion() string {
	return "unknown"
}
