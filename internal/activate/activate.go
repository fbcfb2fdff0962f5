// Package activate renders the shell instructions that scope a session to a
// virtual environment. A child process cannot modify its parent shell, so
// activation is always expressed as a line for the user (or an eval hook) to
// run; the per-flavor script paths follow the layout CPython's venv module
// writes.
package activate

import (
	"fmt"
	"strings"

	"github.com/hpkotak/venvctl/internal/platform"
)

// Flavor identifies the shell dialect an activation instruction targets.
type Flavor int

const (
	Posix Flavor = iota
	Fish
	Cmd
	PowerShell
)

func (f Flavor) String() string {
	switch f {
	case Posix:
		return "posix"
	case Fish:
		return "fish"
	case Cmd:
		return "cmd"
	case PowerShell:
		return "powershell"
	default:
		return "unknown"
	}
}

// ParseFlavor maps a --shell flag value to a Flavor. Common aliases are
// accepted so users can pass the shell they actually run.
func ParseFlavor(s string) (Flavor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "posix", "sh", "bash", "zsh":
		return Posix, nil
	case "fish":
		return Fish, nil
	case "cmd", "bat", "batch":
		return Cmd, nil
	case "powershell", "pwsh", "ps", "ps1":
		return PowerShell, nil
	default:
		return Posix, fmt.Errorf("unsupported shell %q (posix, fish, cmd, powershell)", s)
	}
}

// FlavorFor returns the default instruction flavor for a host kind.
func FlavorFor(k platform.Kind) Flavor {
	if k.Unix() {
		return Posix
	}
	return Cmd
}

// ScriptPath returns the activation script location for a flavor, relative
// to dir. Separators are the target shell's, not the host's: a cmd.exe hint
// must read with backslashes even when rendered on a Unix machine.
func ScriptPath(f Flavor, dir string) string {
	switch f {
	case Fish:
		return dir + "/bin/activate.fish"
	case Cmd:
		return dir + `\Scripts\activate.bat`
	case PowerShell:
		return dir + `\Scripts\Activate.ps1`
	default:
		return dir + "/bin/activate"
	}
}

// Quote returns path ready to interpolate into a command line for the
// flavor's shell. Paths without whitespace pass through unchanged.
func Quote(f Flavor, path string) string {
	if !strings.ContainsAny(path, " \t") {
		return path
	}
	switch f {
	case Cmd, PowerShell:
		return `"` + path + `"`
	default:
		return "'" + path + "'"
	}
}

// Instruction returns the line the user runs to activate the environment.
func Instruction(f Flavor, dir string) string {
	script := ScriptPath(f, dir)
	quoted := Quote(f, script)
	switch f {
	case Posix, Fish:
		return "source " + quoted
	case PowerShell:
		if quoted != script {
			// PowerShell runs a quoted path only through the call operator.
			return "& " + quoted
		}
		return script
	default:
		// cmd.exe invokes the script directly.
		return quoted
	}
}

// GuessPath returns the sh-syntax script location tried first on
// unrecognized systems, where a POSIX shell may still be present
// (Git Bash, MSYS) over a Scripts-style layout.
func GuessPath(dir string) string {
	return dir + "/Scripts/activate"
}
