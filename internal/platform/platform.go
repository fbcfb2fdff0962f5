// Package platform provides OS and shell detection helpers.
package platform

import (
	"os"
	"runtime"
)

// Kind classifies the host OS for activation purposes. The two Unix
// variants carry identical activation semantics but stay distinct so
// reports can name the actual system.
type Kind int

const (
	Darwin Kind = iota
	Linux
	Other
)

// Detect returns the Kind for the current operating system.
func Detect() Kind {
	return kindOf(runtime.GOOS)
}

func kindOf(goos string) Kind {
	switch goos {
	case "darwin":
		return Darwin
	case "linux":
		return Linux
	default:
		return Other
	}
}

func (k Kind) String() string {
	switch k {
	case Darwin:
		return "darwin"
	case Linux:
		return "linux"
	default:
		return "other"
	}
}

// Unix reports whether the kind uses POSIX-style activation scripts.
func (k Kind) Unix() bool {
	return k == Darwin || k == Linux
}

// BinDirName returns the name of the directory inside a virtual
// environment that holds executables: "bin" on Unix-like systems,
// "Scripts" elsewhere (the layout CPython's venv module produces).
func (k Kind) BinDirName() string {
	if k.Unix() {
		return "bin"
	}
	return "Scripts"
}

// OS returns the operating system name (e.g., "darwin", "linux").
func OS() string {
	return runtime.GOOS
}

// Shell returns the user's shell from $SHELL, defaulting to /bin/sh.
func Shell() string {
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}
