//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd
// +build linux darwin dragonfly freebsd netbsd openbsd

package main

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// isTerminal reports whether f is a terminal, in which case the REPL prints
// prompts.
func isTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), ioctlReadTermios)
	return err == nil
}

// platformVersion describes the running kernel for -version.
func platformVersion() string {
	var uname unix.Utsname
	if unix.Uname(&uname) != nil {
		// If uname failed, we don't have anything else to try.
		return "unknown"
	}
	v, r := uname.Version[:], uname.Release[:]
	return fmt.Sprintf("%s.%s", bytes.Trim(r, "\x00"), bytes.Trim(v, "\x00"))
}
