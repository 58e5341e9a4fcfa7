package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleSelectAction struct{}

func (a ToggleSelectAction) Type() string { return "toggle_select" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

type ToggleMultiselectAction struct{}

func (a ToggleMultiselectAction) Type() string { return "toggle_multiselect" }

// Sticky modifier toggles feeding the list's range/additive predicates
type ToggleRangeModeAction struct{}

func (a ToggleRangeModeAction) Type() string { return "toggle_range_mode" }

type ToggleAdditiveModeAction struct{}

func (a ToggleAdditiveModeAction) Type() string { return "toggle_additive_mode" }

// List mutation actions
type AddItemAction struct {
	Label string
}

func (a AddItemAction) Type() string { return "add_item" }

type MoveSelectedAction struct {
	Delta int
}

func (a MoveSelectedAction) Type() string { return "move_selected" }

type RemoveSelectedAction struct{}

func (a RemoveSelectedAction) Type() string { return "remove_selected" }

type ClearListAction struct{}

func (a ClearListAction) Type() string { return "clear_list" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Other actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
