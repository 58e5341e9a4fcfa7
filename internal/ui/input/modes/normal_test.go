package modes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"picklist/internal/ui/input/types"
)

type fakeContext struct {
	index       int
	total       int
	selected    int
	multiselect bool
	rangeOn     bool
	additiveOn  bool
}

func (c fakeContext) CurrentIndex() int    { return c.index }
func (c fakeContext) TotalItems() int      { return c.total }
func (c fakeContext) HasSelection() bool   { return c.selected > 0 }
func (c fakeContext) SelectedCount() int   { return c.selected }
func (c fakeContext) CanMultiselect() bool { return c.multiselect }
func (c fakeContext) RangeMode() bool      { return c.rangeOn }
func (c fakeContext) AdditiveMode() bool   { return c.additiveOn }

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeNavigationKeys(t *testing.T) {
	m := NewNormalMode()
	ctx := fakeContext{total: 5}

	actions, consumed := m.HandleKey(runeKey("j"), ctx)
	require.True(t, consumed)
	require.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)

	actions, consumed = m.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, ctx)
	require.True(t, consumed)
	require.Equal(t, []types.Action{types.NavigateAction{Direction: "up"}}, actions)

	actions, consumed = m.HandleKey(runeKey("G"), ctx)
	require.True(t, consumed)
	require.Equal(t, []types.Action{types.NavigateAction{Direction: "end"}}, actions)
}

func TestNormalModeDoubleGGoesHome(t *testing.T) {
	m := NewNormalMode()
	ctx := fakeContext{total: 5}

	actions, consumed := m.HandleKey(runeKey("g"), ctx)
	require.True(t, consumed)
	require.Empty(t, actions)

	actions, consumed = m.HandleKey(runeKey("g"), ctx)
	require.True(t, consumed)
	require.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)
}

func TestNormalModeOtherKeyBreaksGSequence(t *testing.T) {
	m := NewNormalMode()
	ctx := fakeContext{total: 5}

	m.HandleKey(runeKey("g"), ctx)
	m.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, ctx)

	// The arrow key in between re-arms the sequence instead of completing it
	actions, consumed := m.HandleKey(runeKey("g"), ctx)
	require.True(t, consumed)
	require.Empty(t, actions)

	actions, _ = m.HandleKey(runeKey("g"), ctx)
	require.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)
}

func TestNormalModeSelectionKeys(t *testing.T) {
	m := NewNormalMode()
	ctx := fakeContext{total: 3, selected: 1}

	actions, consumed := m.HandleKey(tea.KeyMsg{Type: tea.KeySpace}, ctx)
	require.True(t, consumed)
	require.Equal(t, []types.Action{types.ToggleSelectAction{}}, actions)

	actions, _ = m.HandleKey(runeKey("v"), ctx)
	require.Equal(t, []types.Action{types.ToggleRangeModeAction{}}, actions)

	actions, _ = m.HandleKey(runeKey("x"), ctx)
	require.Equal(t, []types.Action{types.ToggleAdditiveModeAction{}}, actions)

	actions, _ = m.HandleKey(runeKey("a"), ctx)
	require.Equal(t, []types.Action{types.SelectAllAction{}}, actions)

	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.Equal(t, []types.Action{types.DeselectAllAction{}}, actions)
}

func TestNormalModeSpaceNeedsItems(t *testing.T) {
	m := NewNormalMode()

	_, consumed := m.HandleKey(tea.KeyMsg{Type: tea.KeySpace}, fakeContext{total: 0})
	require.False(t, consumed)
}

func TestNormalModeMoveNeedsSelection(t *testing.T) {
	m := NewNormalMode()

	_, consumed := m.HandleKey(runeKey("J"), fakeContext{total: 3})
	require.False(t, consumed)

	actions, consumed := m.HandleKey(runeKey("J"), fakeContext{total: 3, selected: 1})
	require.True(t, consumed)
	require.Equal(t, []types.Action{types.MoveSelectedAction{Delta: 1}}, actions)

	actions, _ = m.HandleKey(runeKey("K"), fakeContext{total: 3, selected: 2})
	require.Equal(t, []types.Action{types.MoveSelectedAction{Delta: -1}}, actions)
}

func TestNormalModeDeleteEntersConfirm(t *testing.T) {
	m := NewNormalMode()

	_, consumed := m.HandleKey(runeKey("d"), fakeContext{total: 3})
	require.False(t, consumed)

	actions, consumed := m.HandleKey(runeKey("d"), fakeContext{total: 3, selected: 1})
	require.True(t, consumed)
	require.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, actions)
}

func TestConfirmMode(t *testing.T) {
	m := NewConfirmMode("delete", types.RemoveSelectedAction{})
	ctx := fakeContext{total: 3, selected: 1}

	actions, consumed := m.HandleKey(runeKey("y"), ctx)
	require.True(t, consumed)
	require.Equal(t, []types.Action{
		types.RemoveSelectedAction{},
		types.ChangeModeAction{Mode: types.ModeNormal},
	}, actions)

	actions, consumed = m.HandleKey(runeKey("n"), ctx)
	require.True(t, consumed)
	require.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, actions)

	// Anything else is swallowed while the prompt is up
	actions, consumed = m.HandleKey(runeKey("z"), ctx)
	require.True(t, consumed)
	require.Empty(t, actions)
}
