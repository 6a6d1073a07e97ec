package prompts

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/findpayments/internal/ui"
	"github.com/mattn/go-isatty"
)

// ConfirmOverwrite asks before an existing export file is replaced.
func ConfirmOverwrite(path string) (bool, error) {
	overwrite := false

	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s already exists. Overwrite it?", path),
		Default: false,
	}

	if err := survey.AskOne(prompt, &overwrite, ui.IconOption()); err != nil {
		return false, err
	}
	return overwrite, nil
}

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
