package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"picklist/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Any key other than a second "g" breaks the go-to-top sequence
	wasG := m.lastKeyWasG
	m.lastKeyWasG = false

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return nil, false

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeySpace:
		if ctx.TotalItems() > 0 {
			return []types.Action{types.ToggleSelectAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		// Handle gg for go-to-top
		if wasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "v":
		return []types.Action{types.ToggleRangeModeAction{}}, true

	case "x":
		return []types.Action{types.ToggleAdditiveModeAction{}}, true

	case "a":
		return []types.Action{types.SelectAllAction{}}, true

	case "A":
		return []types.Action{types.DeselectAllAction{}}, true

	case "m":
		return []types.Action{types.ToggleMultiselectAction{}}, true

	case "J":
		if ctx.HasSelection() {
			return []types.Action{types.MoveSelectedAction{Delta: 1}}, true
		}
		return nil, false

	case "K":
		if ctx.HasSelection() {
			return []types.Action{types.MoveSelectedAction{Delta: -1}}, true
		}
		return nil, false

	case "o":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeAddItem}}, true

	case "d":
		if ctx.HasSelection() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, true
		}
		return nil, false

	case "D":
		if ctx.TotalItems() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeClearConfirm}}, true
		}
		return nil, false

	case "?":
		return []types.Action{types.ShowHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
