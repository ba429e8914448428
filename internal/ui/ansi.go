package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

func OK(msg string) {
	th := Current()
	fmt.Println(th.Success.Render(th.SymOK + " " + msg))
}

func Fail(msg string) {
	th := Current()
	fmt.Fprintln(os.Stderr, th.Error.Render(th.SymFail+" "+msg))
}
