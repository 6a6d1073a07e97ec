package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTitle prints a highlighted banner line to w.
func PrintTitle(w io.Writer, format string, a ...any) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	pterm.Fprintln(w, style.Sprint(fmt.Sprintf(" %s   ", text)))
}
