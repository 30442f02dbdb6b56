package client

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	index    lipgloss.Style
	password lipgloss.Style
	hint     lipgloss.Style
}

// newStyles binds the styles to w, so colors are dropped when w is not a
// terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:    r.NewStyle().Bold(true),
		index:    r.NewStyle().Faint(true).Width(4).Align(lipgloss.Right),
		password: r.NewStyle().Foreground(lipgloss.Color("10")),
		hint:     r.NewStyle().Faint(true),
	}
}
