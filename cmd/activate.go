package cmd

import (
	"fmt"
	"log/slog"

	"github.com/hpkotak/venvctl/internal/activate"
	"github.com/spf13/cobra"
)

var (
	printFlag bool
	shellFlag string
)

var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Show how to activate the environment in your shell",
	Long: `Show the instruction that activates the environment in your shell.

A child process cannot modify its parent shell, so venvctl verifies the
activation script in a scoped subshell and prints the line for you to run.
To apply it directly:

  eval "$(venvctl activate --print)"

On macOS and Linux the instruction targets POSIX shells (use --shell fish
for fish). On other systems venvctl first tries the sh-style script and
falls back to cmd.exe and PowerShell hints.`,
	Args: cobra.NoArgs,
	RunE: runActivate,
}

func init() {
	activateCmd.Flags().BoolVar(&printFlag, "print", false, "print only the activation instruction, for eval")
	activateCmd.Flags().StringVar(&shellFlag, "shell", "", "instruction flavor: posix, fish, cmd, powershell")
	rootCmd.AddCommand(activateCmd)
}

func runActivate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := venvDir(cfg)
	kind := platformKind()

	flavor := activate.FlavorFor(kind)
	if shellFlag != "" {
		if flavor, err = activate.ParseFlavor(shellFlag); err != nil {
			return err
		}
	}

	// With --print or an explicit --shell there is nothing to verify; the
	// caller told us exactly what to emit.
	if printFlag {
		_, _ = fmt.Fprintln(ioOut, activate.Instruction(flavor, dir))
		return nil
	}
	if shellFlag != "" {
		printInstruction(activate.Instruction(flavor, dir))
		return nil
	}

	if kind.Unix() {
		// The scoped attempt cannot reach the parent shell and its
		// failure (venv missing, script unreadable) changes nothing
		// downstream. The instruction is printed either way.
		script := activate.Quote(activate.Posix, activate.ScriptPath(activate.Posix, dir))
		attemptErr := runQuiet(". " + script)
		slog.Debug("scoped activation attempt", "kind", kind.String(), "err", attemptErr)

		printInstruction(activate.Instruction(flavor, dir))
		return nil
	}

	// Unrecognized system: guess the sh-style path first (Git Bash, MSYS),
	// then fall back to native hints. The hints are informational; an
	// unactivatable environment here is not an error.
	guess := activate.Quote(activate.Posix, activate.GuessPath(dir))
	if attemptErr := runQuiet(". " + guess); attemptErr != nil {
		slog.Debug("activation guess failed", "path", guess, "err", attemptErr)
		_, _ = fmt.Fprintln(ioOut, "Could not verify the activation script. Try one of:")
		_, _ = fmt.Fprintf(ioOut, "  cmd.exe:    %s\n", activate.Instruction(activate.Cmd, dir))
		_, _ = fmt.Fprintf(ioOut, "  PowerShell: %s\n", activate.Instruction(activate.PowerShell, dir))
		return nil
	}

	printInstruction("source " + guess)
	return nil
}

func printInstruction(instruction string) {
	_, _ = fmt.Fprintf(ioOut, "Run this in your shell:\n\n  %s\n", instruction)
}
