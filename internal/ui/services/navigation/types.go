package navigation

// State holds cursor and viewport state
type State struct {
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	MaxIndex       int
}

// Direction represents a navigation direction
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionPageUp
	DirectionPageDown
	DirectionHome
	DirectionEnd
)
