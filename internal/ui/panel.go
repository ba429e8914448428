package ui

import (
	"fmt"
	"io"
	"strings"
)

// ProgressBar renders a bar with a done/total counter.
func ProgressBar(th Theme, done, total, width int) string {
	denom := total
	if denom <= 0 {
		denom = 1
	}
	if width < 5 {
		width = 5
	}
	filled := done * width / denom
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat(th.BarFull, filled) + strings.Repeat(th.BarEmpty, width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// PanelString frames lines in the theme's border.
func PanelString(th Theme, lines []string) string {
	return th.Frame.Render(strings.Join(lines, "\n"))
}

// Panel writes a framed box followed by a newline.
func Panel(w io.Writer, th Theme, lines []string) error {
	_, err := fmt.Fprintln(w, PanelString(th, lines))
	return err
}
