package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"picklist/internal/ui/input/types"
)

type stubContext struct{}

func (stubContext) CurrentIndex() int    { return 0 }
func (stubContext) TotalItems() int      { return 3 }
func (stubContext) HasSelection() bool   { return true }
func (stubContext) SelectedCount() int   { return 1 }
func (stubContext) CanMultiselect() bool { return true }
func (stubContext) RangeMode() bool      { return false }
func (stubContext) AdditiveMode() bool   { return false }

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandlerStartsInNormalMode(t *testing.T) {
	h := New()
	require.Equal(t, types.ModeNormal, h.CurrentMode())
	require.Equal(t, "normal", h.ModeName())
}

func TestHandlerEntersAddModeAndCollectsText(t *testing.T) {
	h := New()
	ctx := stubContext{}

	actions, _ := h.HandleKey(key("o"), ctx)
	require.Empty(t, actions)
	require.Equal(t, types.ModeAddItem, h.CurrentMode())

	// Typed runes flow into the shared text input
	actions, _ = h.HandleKey(key("h"), ctx)
	require.Equal(t, []types.Action{types.UpdateTextAction{Text: "h"}}, actions)
	actions, _ = h.HandleKey(key("i"), ctx)
	require.Equal(t, []types.Action{types.UpdateTextAction{Text: "hi"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Equal(t, []types.Action{types.AddItemAction{Label: "hi"}}, actions)
	require.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestHandlerAddModeEscapeCancels(t *testing.T) {
	h := New()
	ctx := stubContext{}

	h.HandleKey(key("o"), ctx)
	h.HandleKey(key("z"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.Empty(t, actions)
	require.Equal(t, types.ModeNormal, h.CurrentMode())

	// The input resets on the next entry into the mode
	h.HandleKey(key("o"), ctx)
	actions, _ = h.HandleKey(key("a"), ctx)
	require.Equal(t, []types.Action{types.UpdateTextAction{Text: "a"}}, actions)
}

func TestHandlerConfirmFlow(t *testing.T) {
	h := New()
	ctx := stubContext{}

	h.HandleKey(key("d"), ctx)
	require.Equal(t, types.ModeDeleteConfirm, h.CurrentMode())

	actions, _ := h.HandleKey(key("y"), ctx)
	require.Equal(t, []types.Action{types.RemoveSelectedAction{}}, actions)
	require.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestHandlerUnknownKeyInNormalMode(t *testing.T) {
	h := New()

	actions, cmd := h.HandleKey(key("!"), stubContext{})
	require.Nil(t, actions)
	require.Nil(t, cmd)
}
