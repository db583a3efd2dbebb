package utils

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ConfirmDestructive prompts the user to confirm a destructive action.
// In a non-interactive session it refuses instead of prompting, so that
// scripts must pass an explicit confirmation flag.
func ConfirmDestructive(title string) (bool, error) {
	if !IsInteractive() {
		return false, fmt.Errorf("refusing to prompt in a non-interactive session; pass --yes to confirm")
	}

	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}
