package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Confirm     lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	ModeFlag    lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Marker      lipgloss.Style
	Cursor      lipgloss.Style
	HighlightBg lipgloss.Style
	SelectionBg lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		ModeFlag:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
		Marker:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
