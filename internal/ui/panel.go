package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(strings.Join(lines, "\n")))
}

// PanelString frames inner without printing it.
func PanelString(inner string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Bullets renders entries one per line with the theme bullet.
func Bullets(entries []string) []string {
	t := Current()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, t.Accent.Render(t.SymBullet)+" "+e)
	}
	return out
}
