// Package venv creates and inspects CPython virtual environments.
//
// Creation shells out to the interpreter's venv module rather than
// reimplementing its layout: the tool owns the directory format, this
// package only drives it and reads back the pyvenv.cfg marker it writes.
package venv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/hpkotak/venvctl/internal/platform"
	"github.com/hpkotak/venvctl/internal/python"
)

// ErrNotVenv means the directory does not carry a pyvenv.cfg marker.
var ErrNotVenv = errors.New("not a virtual environment")

// CfgFile is the marker file the venv module writes at the environment root.
const CfgFile = "pyvenv.cfg"

// CreateOptions controls provisioning.
type CreateOptions struct {
	// Interpreters is the ordered candidate list. Empty means the per-OS
	// defaults from the python package.
	Interpreters []string
	// Prompt is passed through as the venv's --prompt name when set.
	Prompt string
}

// Package-level function variables for testability.
var (
	findInterpreter = python.Find
	runCommand      = defaultRunCommand
)

func defaultRunCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Create provisions a virtual environment at dir using the first candidate
// interpreter available on PATH. Re-running over an existing environment is
// not an error: the venv module tolerates re-creation into an existing tree.
// Execution failures propagate as-is; there is no retry and no fallback to
// later candidates once an interpreter has been selected.
func Create(ctx context.Context, dir string, opts CreateOptions) error {
	interp, err := findInterpreter(opts.Interpreters)
	if err != nil {
		return fmt.Errorf("locating interpreter: %w", err)
	}

	args := []string{"-m", "venv"}
	if opts.Prompt != "" {
		args = append(args, "--prompt", opts.Prompt)
	}
	args = append(args, dir)

	slog.Debug("creating virtual environment",
		"interpreter", interp.Name, "path", interp.Path, "dir", dir)

	if err := runCommand(ctx, interp.Path, args...); err != nil {
		return fmt.Errorf("creating virtual environment with %s: %w", interp.Name, err)
	}
	return nil
}

// Exists reports whether dir holds a virtual environment.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, CfgFile))
	return err == nil
}

// Info describes an existing environment, read from its pyvenv.cfg.
type Info struct {
	Dir                string
	Home               string // directory of the interpreter the venv wraps
	Version            string
	Executable         string // present for Python 3.11+
	Prompt             string
	SystemSitePackages bool
}

// Read parses dir's pyvenv.cfg. Returns ErrNotVenv when the marker file is
// missing.
func Read(dir string) (*Info, error) {
	data, err := os.ReadFile(filepath.Join(dir, CfgFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotVenv, dir)
		}
		return nil, fmt.Errorf("reading %s: %w", CfgFile, err)
	}

	info := &Info{Dir: dir}
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "home":
			info.Home = value
		case "version", "version_info": // CPython writes version, uv writes version_info
			info.Version = value
		case "executable":
			info.Executable = value
		case "prompt":
			info.Prompt = unquote(value)
		case "include-system-site-packages":
			info.SystemSitePackages = strings.EqualFold(value, "true")
		}
	}
	return info, nil
}

// unquote strips the repr-style quoting some venv versions apply to the
// prompt value.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// BinDir returns the environment's executable directory for the current
// host ("bin" on Unix, "Scripts" elsewhere).
func BinDir(dir string) string {
	return filepath.Join(dir, platform.Detect().BinDirName())
}

// Environ returns base with the environment applied, mirroring what the
// activate script does to a shell: VIRTUAL_ENV set, the venv bin directory
// prepended to PATH, and PYTHONHOME dropped.
func Environ(dir string, base []string) []string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	bin := BinDir(abs)

	out := make([]string, 0, len(base)+2)
	pathSeen := false
	for _, kv := range base {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			out = append(out, kv)
			continue
		}
		switch {
		case strings.EqualFold(key, "PYTHONHOME"), strings.EqualFold(key, "VIRTUAL_ENV"):
			// dropped; VIRTUAL_ENV is re-added below
		case strings.EqualFold(key, "PATH"):
			pathSeen = true
			out = append(out, key+"="+bin+string(os.PathListSeparator)+value)
		default:
			out = append(out, kv)
		}
	}
	if !pathSeen {
		out = append(out, "PATH="+bin)
	}
	out = append(out, "VIRTUAL_ENV="+abs)
	return out
}

// Remove deletes the environment directory. It refuses directories that do
// not carry pyvenv.cfg, so a mistyped --dir cannot take out an arbitrary
// tree.
func Remove(dir string) error {
	if !Exists(dir) {
		return fmt.Errorf("%w: %s", ErrNotVenv, dir)
	}
	slog.Debug("removing virtual environment", "dir", dir)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	return nil
}
