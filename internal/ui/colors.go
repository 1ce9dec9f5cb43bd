package ui

import "github.com/charmbracelet/lipgloss"

// styles is the package stylesheet. The title blue matches the web client's
// accent color.
var styles = newPalette("#2563EB", "#04B575", "#FF5555", "#FFA500", "#626262")

// palette groups the named [lipgloss.Style] values the views render with.
type palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func newPalette(title, ok, err, warn, help string) *palette {
	return &palette{
		title: bold(title).MarginBottom(1),
		ok:    bold(ok),
		err:   bold(err),
		warn:  fg(warn),
		help:  fg(help).Italic(true),
	}
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func bold(color string) lipgloss.Style {
	return fg(color).Bold(true)
}
