// Package ui holds the palette and shared styles of the keygrid terminal UI.
package ui

import (
	"charm.land/lipgloss/v2"
)

// Colors
var (
	PrimaryColor   = lipgloss.Color("62")  // Purple
	SecondaryColor = lipgloss.Color("241") // Gray
	AccentColor    = lipgloss.Color("86")  // Cyan
	TextColor      = lipgloss.Color("252") // Light gray
	BandColor      = lipgloss.Color("236") // Group background
)

// Styles for the application
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	// Grid cells
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Modal frame
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	DimStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)

// Title returns the formatted application title for a keymap.
func Title(name string) string {
	if name == "" {
		return TitleStyle.Render("keygrid")
	}
	return TitleStyle.Render("keygrid · " + name)
}
