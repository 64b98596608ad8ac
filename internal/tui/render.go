package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// padLine pads or truncates a styled line to exactly w cells. Truncation
// terminates ANSI styling so colors never bleed into the next cell.
func padLine(line string, w int) string {
	if w < 1 {
		return ""
	}
	lw := xansi.StringWidth(line)
	if lw < w {
		return line + strings.Repeat(" ", w-lw)
	}
	if lw > w {
		return xansi.Cut(line, 0, w) + "\x1b[0m"
	}
	return line
}

// renderInputLine keeps a textinput view on a single visual line.
// If the view ever contains newlines (or overflows due to ANSI/cursor
// styling) it can trigger wrapping that looks like newline insertion
// while typing.
func renderInputLine(w int, inputView string) string {
	if w < 10 {
		w = 10
	}
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")
	return padLine(" "+inputView+" ", w)
}

// renderCard draws a bordered card, highlighted when selected.
func renderCard(content string, w int, selected bool) string {
	border := colorCardBorder
	if selected {
		border = colorSelectedBorder
	}
	if w < 20 {
		w = 20
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(w - 2).
		Render(content)
}

// renderSection draws a heading above its rows.
func renderSection(heading lipgloss.Style, title string, rows []string) string {
	parts := make([]string, 0, len(rows)+1)
	parts = append(parts, heading.Render(title))
	parts = append(parts, rows...)
	return strings.Join(parts, "\n")
}

func renderFooter(help string) string {
	return styleMuted().Render(help)
}
