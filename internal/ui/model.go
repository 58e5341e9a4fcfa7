package ui

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"picklist/internal/config"
	"picklist/internal/eventbus"
	"picklist/internal/list"
	"picklist/internal/ui/input"
	"picklist/internal/ui/input/types"
	"picklist/internal/ui/services/navigation"
	"picklist/internal/ui/views"
)

// itemRow is the host-side view for one list entry. The controller drives it
// through the View callbacks; the model reads it back when rendering.
type itemRow struct {
	model    *Model
	item     *list.Item[string]
	label    string
	selected bool
}

func (r *itemRow) Init() {
	r.label = r.item.Value()
}

func (r *itemRow) SelectionChanged(selected bool) {
	r.selected = selected
}

func (r *itemRow) SetDisplayPosition(index int) {
	r.model.placeRow(r, index)
}

// Model is the main Bubble Tea model. It owns the list controller and wires
// navigation, input modes and rendering around it.
type Model struct {
	ctrl     *list.Controller[string]
	nav      *navigation.Service
	input    *input.Handler
	renderer *views.Renderer
	helpR    *HelpRenderer
	helpOps  *HelpOps
	helpBar  help.Model
	bus      eventbus.EventBus
	cfg      *config.Config

	// rows mirrors the controller's display order, kept in sync through the
	// SetDisplayPosition callbacks
	rows []*itemRow

	rangeMode    bool
	additiveMode bool

	width         int
	height        int
	status        string
	statusIsError bool
	quitting      bool
}

// NewModel creates the model and seeds the list from the configuration
func NewModel(cfg *config.Config, bus eventbus.EventBus) *Model {
	m := &Model{
		ctrl:     list.NewController[string](),
		nav:      navigation.NewService(),
		input:    input.New(),
		renderer: views.NewRenderer(),
		helpR:    NewHelpRenderer(),
		helpOps:  NewHelpOps(nil),
		helpBar:  help.New(),
		bus:      bus,
		cfg:      cfg,
	}

	m.ctrl.SetViewFactory(func(it *list.Item[string]) list.View {
		return &itemRow{model: m, item: it}
	})
	m.ctrl.SetDestroyFunc(func(it *list.Item[string]) {
		it.Destroy()
		// Survivors were repositioned before this hook runs, so the tail
		// slot is the stale one
		m.rows = m.rows[:m.ctrl.Count()]
	})
	m.ctrl.SetRangeSelectFunc(func() bool { return m.rangeMode })
	m.ctrl.SetAdditiveSelectFunc(func() bool { return m.additiveMode })
	m.ctrl.OnSelectionChange(func() {
		if m.bus != nil {
			m.bus.Publish(eventbus.SelectionChangedEvent{
				Selected: slices.Collect(m.ctrl.SelectedValues()),
			})
		}
	})

	m.ctrl.SetCanMultiselect(cfg.Multiselect)

	for _, label := range cfg.Items {
		if _, err := m.ctrl.Append(label); err != nil {
			log.Printf("Skipping config item %q: %v", label, err)
		}
	}

	m.nav.SetQueryFunction(func() int {
		return m.ctrl.Count() - 1
	})

	return m
}

// SetProgram attaches the running Bubble Tea program, needed for the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps.SetProgram(p)
}

// Controller exposes the underlying list controller
func (m *Model) Controller() *list.Controller[string] {
	return m.ctrl
}

// Context interface for input modes

func (m *Model) CurrentIndex() int { return m.nav.Cursor() }
func (m *Model) TotalItems() int   { return m.ctrl.Count() }
func (m *Model) HasSelection() bool {
	return m.ctrl.SelectedIndex() >= 0
}
func (m *Model) SelectedCount() int {
	n := 0
	for range m.ctrl.SelectedValues() {
		n++
	}
	return n
}
func (m *Model) CanMultiselect() bool { return m.ctrl.CanMultiselect() }
func (m *Model) RangeMode() bool      { return m.rangeMode }
func (m *Model) AdditiveMode() bool   { return m.additiveMode }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpBar.Width = msg.Width
		m.nav.SetViewportHeight(msg.Height)
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.input.HandleKey(msg, m)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.applyAction(action))
		}
		return m, tea.Batch(cmds...)

	case helpPagerMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("help pager failed: %v", msg.err), true)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) applyAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.NavigateAction:
		m.nav.Navigate(directionFromString(a.Direction))

	case types.ToggleSelectAction:
		it, err := m.ctrl.ItemAt(m.nav.Cursor())
		if err != nil {
			return nil
		}
		it.SetSelected(!it.Selected())

	case types.SelectAllAction:
		if !m.ctrl.CanMultiselect() {
			m.setStatus("multiselect is off", false)
			return nil
		}
		m.ctrl.SelectAll()
		m.setStatus(fmt.Sprintf("selected all %d items", m.ctrl.Count()), false)

	case types.DeselectAllAction:
		m.ctrl.UnselectAll()
		m.setStatus("", false)

	case types.ToggleMultiselectAction:
		enabled := !m.ctrl.CanMultiselect()
		m.ctrl.SetCanMultiselect(enabled)
		m.cfg.Multiselect = enabled
		if enabled {
			m.setStatus("multiselect on", false)
		} else {
			m.rangeMode = false
			m.additiveMode = false
			m.setStatus("multiselect off", false)
		}

	case types.ToggleRangeModeAction:
		m.rangeMode = !m.rangeMode

	case types.ToggleAdditiveModeAction:
		m.additiveMode = !m.additiveMode

	case types.AddItemAction:
		if _, err := m.ctrl.Append(a.Label); err != nil {
			if errors.Is(err, list.ErrDuplicateValue) {
				m.setStatus(fmt.Sprintf("%q is already in the list", a.Label), true)
			} else {
				m.setStatus(err.Error(), true)
			}
			return nil
		}
		m.nav.MoveToIndex(m.ctrl.Count() - 1)
		m.publish(eventbus.ItemAppendedEvent{Label: a.Label, Index: m.ctrl.Count() - 1})
		m.setStatus(fmt.Sprintf("added %q", a.Label), false)

	case types.MoveSelectedAction:
		m.ctrl.MoveSelected(a.Delta)
		if idx := m.ctrl.SelectedIndex(); idx >= 0 {
			m.nav.MoveToIndex(idx)
		}
		m.publish(eventbus.ItemsMovedEvent{Delta: a.Delta})

	case types.RemoveSelectedAction:
		removed := slices.Collect(m.ctrl.SelectedValues())
		if len(removed) == 0 {
			return nil
		}
		m.ctrl.RemoveSelected()
		m.nav.MoveToIndex(m.nav.Cursor())
		m.publish(eventbus.ItemRemovedEvent{Labels: removed})
		m.setStatus(fmt.Sprintf("removed %d item(s)", len(removed)), false)

	case types.ClearListAction:
		m.ctrl.Clear()
		m.nav.MoveToIndex(0)
		m.publish(eventbus.ListClearedEvent{})
		m.setStatus("list cleared", false)

	case types.UpdateTextAction:
		// The shared text input already holds the new value

	case types.ShowHelpAction:
		content := m.helpR.RenderHelpContent()
		return func() tea.Msg {
			return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
		}

	case types.QuitAction:
		m.quitting = true
		m.publish(eventbus.ConfigChangedEvent{
			Items:       m.listLabels(),
			Multiselect: m.ctrl.CanMultiselect(),
		})
		return tea.Quit
	}

	return nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	rows := make([]views.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = views.Row{Label: r.label, Selected: r.selected}
	}

	mode := m.input.ModeName()
	if mode == "normal" {
		mode = ""
	}

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Rows:           rows,
		Cursor:         m.nav.Cursor(),
		ViewportOffset: m.nav.ViewportOffset(),
		ViewportHeight: m.nav.ViewportHeight(),
		Marker:         m.cfg.UISettings.Marker,
		Multiselect:    m.ctrl.CanMultiselect(),
		RangeMode:      m.rangeMode,
		AdditiveMode:   m.additiveMode,
		SelectedCount:  m.SelectedCount(),
		StatusMessage:  m.status,
		StatusIsError:  m.statusIsError,
		InputMode:      mode,
		TextInput:      m.input.TextInputView(),
		HelpModel:      m.helpBar,
	})
}

func (m *Model) placeRow(r *itemRow, index int) {
	for len(m.rows) <= index {
		m.rows = append(m.rows, nil)
	}
	m.rows[index] = r
}

func (m *Model) listLabels() []string {
	labels := make([]string, 0, m.ctrl.Count())
	for i := 0; i < m.ctrl.Count(); i++ {
		v, err := m.ctrl.ValueAt(i)
		if err != nil {
			continue
		}
		labels = append(labels, v)
	}
	return labels
}

func (m *Model) setStatus(msg string, isError bool) {
	m.status = msg
	m.statusIsError = isError
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

func directionFromString(s string) navigation.Direction {
	switch s {
	case "up":
		return navigation.DirectionUp
	case "down":
		return navigation.DirectionDown
	case "pageup":
		return navigation.DirectionPageUp
	case "pagedown":
		return navigation.DirectionPageDown
	case "home":
		return navigation.DirectionHome
	case "end":
		return navigation.DirectionEnd
	}
	return navigation.DirectionDown
}
