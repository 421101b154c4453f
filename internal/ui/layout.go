package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/somfix/dashboard/internal/theme"
)

// Layout manages the terminal layout dimensions for the dashboard frame.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.StatusBarHeight
}

// RenderHeader renders the top header bar with the app title on the left
// and the session segment (user name, role, unread badge) on the right.
func (l Layout) RenderHeader(title string, sessionSegment string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	segmentRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(sessionSegment)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(segmentRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		segmentRendered,
	)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, an optional banner strip, the content area, and the
// status bar.
func (l Layout) RenderWithFrame(
	header string,
	banners string,
	content string,
	statusBar string,
) string {
	if banners == "" {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			content,
			statusBar,
		)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		banners,
		content,
		statusBar,
	)
}
