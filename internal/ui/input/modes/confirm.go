package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"picklist/internal/ui/input/types"
)

// ConfirmMode asks for a yes/no answer before running a destructive action
type ConfirmMode struct {
	name      string
	confirmed types.Action
}

// NewConfirmMode creates a confirm mode that emits confirmed on "y"/enter
func NewConfirmMode(name string, confirmed types.Action) *ConfirmMode {
	return &ConfirmMode{name: name, confirmed: confirmed}
}

func (m *ConfirmMode) Name() string {
	return m.name
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return []types.Action{m.confirmed, types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case tea.KeyEsc, tea.KeyCtrlC:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	switch msg.String() {
	case "y", "Y":
		return []types.Action{m.confirmed, types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "n", "N", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// Swallow everything else while the prompt is up
	return nil, true
}
