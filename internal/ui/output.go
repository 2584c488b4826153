package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DisableColor strips colours and text attributes from every style.
// Borders and padding are still drawn.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// OK prints a success line.
func OK(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Success.Render(t.SymOK+" "+msg))
}

// Fail prints an error line.
func Fail(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Error.Render(t.SymFail+" "+msg))
}

// Muted prints a de-emphasised line, used for hints.
func Muted(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Muted.Render(msg))
}

// Highlight prints s in the title style.
func Highlight(w io.Writer, s string) {
	fmt.Fprintln(w, Current().Title.Render(s))
}
