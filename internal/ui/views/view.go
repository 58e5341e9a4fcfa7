package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Row is one renderable list entry.
type Row struct {
	Label    string
	Selected bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Rows           []Row
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	Marker         string
	Multiselect    bool
	RangeMode      bool
	AdditiveMode   bool
	SelectedCount  int
	StatusMessage  string
	StatusIsError  bool
	InputMode      string
	TextInput      string
	HelpModel      help.Model
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	switch state.InputMode {
	case "add":
		content.WriteString(state.TextInput)
		content.WriteString("\n\n")
	case "delete":
		prompt := fmt.Sprintf("Delete %d selected item(s)? (y/n): ", state.SelectedCount)
		content.WriteString(r.styles.Confirm.Render(prompt))
		content.WriteString("\n\n")
	case "clear":
		prompt := fmt.Sprintf("Remove all %d item(s)? (y/n): ", len(state.Rows))
		content.WriteString(r.styles.Confirm.Render(prompt))
		content.WriteString("\n\n")
	}

	if len(state.Rows) == 0 {
		content.WriteString(r.styles.Dim.Render("List is empty. Press o to add an item."))
	} else {
		content.WriteString(r.renderRows(state))
	}

	content.WriteString(r.renderStatusLine(state))

	helpText := state.HelpModel.View(defaultKeyMap)

	// Pad so the help hint sits at the bottom of the terminal
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	paddingNeeded := availableLines - currentLines - 1
	if paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("picklist")

	flags := []string{}
	if state.Multiselect {
		flags = append(flags, "[MULTI]")
	}
	if state.RangeMode {
		flags = append(flags, "[RANGE]")
	}
	if state.AdditiveMode {
		flags = append(flags, "[ADD]")
	}
	if len(flags) == 0 {
		return logo
	}

	rightContent := r.styles.ModeFlag.Render(strings.Join(flags, " "))
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return fmt.Sprintf("%s  %s", logo, rightContent)
}

func (r *Renderer) renderRows(state ViewState) string {
	marker := state.Marker
	if marker == "" {
		marker = "›"
	}

	var lines []string
	for i, row := range state.Rows {
		if i < state.ViewportOffset {
			continue
		}
		lines = append(lines, r.renderRow(row, i == state.Cursor, marker, state.Width))
		if state.ViewportHeight > 0 && len(lines) >= state.ViewportHeight {
			break
		}
	}

	out := strings.Join(lines, "\n")
	if state.ViewportOffset > 0 || state.ViewportOffset+len(lines) < len(state.Rows) {
		out += "\n" + r.styles.Dim.Render(fmt.Sprintf("  (%d-%d of %d)",
			state.ViewportOffset+1, state.ViewportOffset+len(lines), len(state.Rows)))
	}
	return out
}

func (r *Renderer) renderRow(row Row, atCursor bool, marker string, width int) string {
	cursor := "  "
	if atCursor {
		cursor = r.styles.Cursor.Render("▸ ")
	}

	mark := "  "
	if row.Selected {
		mark = r.styles.Marker.Render(marker) + " "
	}

	line := cursor + mark + row.Label
	if atCursor {
		return r.styles.HighlightBg.Render(line)
	}
	if row.Selected {
		return r.styles.SelectionBg.Render(line)
	}
	return line
}

func (r *Renderer) renderStatusLine(state ViewState) string {
	parts := []string{fmt.Sprintf("%d item(s)", len(state.Rows))}
	if state.SelectedCount > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", state.SelectedCount))
	}
	line := strings.Join(parts, ", ")

	if state.StatusMessage != "" {
		msg := state.StatusMessage
		if state.StatusIsError {
			msg = r.styles.StatusError.Render(msg)
		}
		line = fmt.Sprintf("%s | %s", line, msg)
	}

	return r.styles.Status.Render(line)
}
