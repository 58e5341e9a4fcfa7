package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"picklist/internal/ui/input/types"
)

// AddItemMode collects the label for a new list entry
type AddItemMode struct {
	textInput *textinput.Model
}

func NewAddItemMode(ti *textinput.Model) *AddItemMode {
	return &AddItemMode{textInput: ti}
}

func (m *AddItemMode) Name() string {
	return "add"
}

func (m *AddItemMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *AddItemMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *AddItemMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		label := strings.TrimSpace(m.textInput.Value())
		if label == "" {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
		}
		return []types.Action{
			types.AddItemAction{Label: label},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case tea.KeyEsc:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// Let the text input consume everything else
	return nil, false
}
